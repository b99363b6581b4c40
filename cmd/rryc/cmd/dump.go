package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rry-lang/rryc/internal/ast"
	"github.com/rry-lang/rryc/internal/diag"
	"github.com/rry-lang/rryc/internal/names"
	"github.com/rry-lang/rryc/internal/parser"
	"github.com/rry-lang/rryc/internal/resolve"
	"github.com/rry-lang/rryc/internal/rst"
	"github.com/rry-lang/rryc/internal/types"
	"github.com/spf13/cobra"
)

var dumpStage string

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Dump an intermediate stage of the pipeline as indented text",
	Long: `Dump the AST, the resolved tree (RST), or the subtyping lattice for
a rry source file, the way the teacher's own parse/lex commands expose
intermediate stages for debugging.

--stage accepts "ast", "rst", or "types" (default "ast").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpStage, "stage", "ast", `pipeline stage to dump: "ast", "rst", or "types"`)
}

func runDump(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	acc := diag.NewAccumulator()
	decls := parser.Parse(src, acc)

	switch dumpStage {
	case "ast":
		dumpDeclarations(decls, 0)
	case "rst":
		within := names.AllNamesWithin(src, decls, acc)
		res := resolve.Resolve(src, decls, within, acc)
		dumpItems(res.Tree, 0)
	case "types":
		within := names.AllNamesWithin(src, decls, acc)
		res := resolve.Resolve(src, decls, within, acc)
		info := types.Build(types.NewInterner(), res.Tree, acc)
		dumpTypeInfo(info)
	default:
		return fmt.Errorf("unknown --stage %q: want ast, rst, or types", dumpStage)
	}

	printDiagnostics(acc)
	return nil
}

func indent(n int) string { return strings.Repeat("  ", n) }

func dumpDeclarations(decls ast.Declarations, depth int) {
	fmt.Printf("%sDeclarations (%d items)\n", indent(depth), len(decls.Items))
	for _, d := range decls.Items {
		dumpDeclaration(d, depth+1)
	}
}

func dumpDeclaration(d ast.Declaration, depth int) {
	switch {
	case d.Node.Class != nil:
		fmt.Printf("%sClass %s (is %d, %d public, %d private)\n", indent(depth),
			declName(d.Node.Class.Name), len(d.Node.Class.Inherits), len(d.Node.Class.Public), len(d.Node.Class.Private))
		for _, m := range d.Node.Class.Public {
			dumpDeclaration(m, depth+1)
		}
		for _, m := range d.Node.Class.Private {
			dumpDeclaration(m, depth+1)
		}
	case d.Node.Variant != nil:
		fmt.Printf("%sVariant %s (is %d, %d public, %d private)\n", indent(depth),
			declName(d.Node.Variant.Name), len(d.Node.Variant.Inherits), len(d.Node.Variant.Public), len(d.Node.Variant.Private))
		for _, m := range d.Node.Variant.Public {
			dumpDeclaration(m, depth+1)
		}
		for _, m := range d.Node.Variant.Private {
			dumpDeclaration(m, depth+1)
		}
	case d.Node.Function != nil:
		fn := d.Node.Function
		fmt.Printf("%sFunction %s (%d args, body=%v)\n", indent(depth), declName(fn.Name), len(fn.Args), fn.Body != nil)
	case d.Node.Variable != nil:
		fmt.Printf("%sVariable %s (has-body=%v)\n", indent(depth), declName(d.Node.Variable.Name), d.Node.Variable.HasBody)
	default:
		fmt.Printf("%s<invalid declaration>\n", indent(depth))
	}
}

func declName(n ast.DeclarationName) string {
	switch {
	case n.Node.Identifier != nil:
		if n.Prefix != nil {
			return n.Prefix.String() + "." + n.Node.Identifier.String()
		}
		return n.Node.Identifier.String()
	case n.Node.Quoted != nil:
		return "\"" + *n.Node.Quoted + "\""
	default:
		return "<invalid>"
	}
}

func dumpItems(items rst.Items, depth int) {
	fmt.Printf("%sItems (%d classes, %d values)\n", indent(depth), len(items.Classes), len(items.Values))
	for _, c := range items.Classes {
		dumpClass(c, depth+1)
	}
	for _, v := range items.Values {
		fmt.Printf("%sValue %s\n", indent(depth+1), rstDeclName(v.Name))
	}
}

func dumpClass(c rst.Class, depth int) {
	kind := "Class"
	if c.Kind == rst.ClassKindVariant {
		kind = "Variant"
	}
	fmt.Printf("%s%s %s (is %d)\n", indent(depth), kind, rstDeclName(c.Name), len(c.Inherits))
	for _, nested := range c.Items.Classes {
		dumpClass(nested, depth+1)
	}
	for _, v := range c.Items.Values {
		fmt.Printf("%sValue %s\n", indent(depth+1), rstDeclName(v.Name))
	}
}

func rstDeclName(n rst.DeclarationName) string {
	switch {
	case n.Name != nil:
		return n.Name.String()
	case n.Field != nil:
		return n.Field.Of.String() + "." + n.Field.Part.String()
	default:
		return "<invalid>"
	}
}

func dumpTypeInfo(info *types.Info) {
	fmt.Println("Subtyping lattice:")
	var open, edges []string
	for t, isOpen := range info.Open {
		if isOpen {
			open = append(open, fmt.Sprintf("  open  %s", t))
		}
	}
	for sub, supers := range exportedSupers(info) {
		for _, parent := range supers {
			edges = append(edges, fmt.Sprintf("  %s <: %s", sub, parent))
		}
	}
	sort.Strings(open)
	sort.Strings(edges)
	for _, line := range append(open, edges...) {
		fmt.Println(line)
	}
}

func exportedSupers(info *types.Info) map[*types.Type][]*types.Type {
	result := map[*types.Type][]*types.Type{}
	for _, t := range info.Subtypes.Types() {
		for _, parent := range info.Subtypes.Supertypes(t) {
			if parent != t {
				result[t] = append(result[t], parent)
			}
		}
	}
	return result
}
