package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alloy/internal/annotations"
	"alloy/internal/builtins"
	"alloy/internal/enhance"
	"alloy/internal/foreign"
	"alloy/internal/qualifiers"
	"alloy/internal/symbols"
	"alloy/internal/types"
)

var (
	enhanceQualifiers  []string
	enhanceAnnotations string
	enhanceFormat      string
	enhanceStrict      bool
)

func init() {
	enhanceCmd.Flags().StringArrayVarP(&enhanceQualifiers, "qualifier", "q", nil, "position qualifier binding (IDX:FLAGS, repeatable)")
	enhanceCmd.Flags().StringVarP(&enhanceAnnotations, "annotations", "a", "", "annotations of the reference (@Name or @Name(\"arg\"))")
	enhanceCmd.Flags().StringVar(&enhanceFormat, "format", "pretty", "output format (pretty|json)")
	enhanceCmd.Flags().BoolVar(&enhanceStrict, "strict", false, "fail on classes outside the host identity table")
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance <foreign type>",
	Short: "Enhance one foreign type reference into a flexible host type",
	Long: `Enhance parses a foreign type reference, applies position qualifiers
and prints the resulting host type bounds.

Positions follow the breadth-first numbering of the type tree: the root
classifier is 0, its arguments come next, left to right.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(enhanceFormat) {
		case "pretty", "json":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", enhanceFormat)
		}

		res, anns, err := enhanceOne(args[0], enhanceQualifiers, enhanceAnnotations, enhanceStrict)
		if err != nil {
			return err
		}

		if strings.ToLower(enhanceFormat) == "json" {
			return renderEnhanceJSON(cmd.OutOrStdout(), args[0], res, anns)
		}
		renderEnhancePretty(cmd.OutOrStdout(), res, anns)
		return nil
	},
}

func enhanceOne(source string, specs []string, annText string, strict bool) (types.Resolved, annotations.Set, error) {
	node, err := foreign.Parse(source)
	if err != nil {
		return types.Resolved{}, nil, err
	}

	var anns annotations.Set
	if annText != "" {
		anns, err = annotations.Parse(annText)
		if err != nil {
			return types.Resolved{}, nil, err
		}
	}

	var lookup qualifiers.Lookup
	if len(specs) > 0 {
		table, err := qualifiers.ParseSpecs(specs)
		if err != nil {
			return types.Resolved{}, nil, err
		}
		lookup = table.Lookup
	}

	classes := builtins.NewTable()
	env := enhance.Env{Classes: classes, Params: symbols.NewParamSet()}
	if !strict {
		env.Classes = classes.Lenient()
	}

	res, err := enhance.Enhance(node, anns, lookup, env)
	if err != nil {
		return types.Resolved{}, nil, err
	}
	return res, anns, nil
}

type enhancePayload struct {
	Source   string `json:"source"`
	Lower    string `json:"lower"`
	Upper    string `json:"upper"`
	Flexible bool   `json:"flexible"`
	Default  string `json:"default,omitempty"`
}

func renderEnhancePretty(out io.Writer, res types.Resolved, anns annotations.Set) {
	if res.Flexible {
		fmt.Fprintf(out, "lower: %s\n", res.Lower)
		fmt.Fprintf(out, "upper: %s\n", res.Upper)
	} else {
		fmt.Fprintf(out, "type: %s\n", res.Lower)
	}
	if def, ok := annotations.DeclaredDefault(anns); ok {
		fmt.Fprintf(out, "default: %s\n", renderDefault(def))
	}
}

func renderEnhanceJSON(out io.Writer, source string, res types.Resolved, anns annotations.Set) error {
	payload := enhancePayload{
		Source:   source,
		Lower:    res.Lower.String(),
		Upper:    res.Upper.String(),
		Flexible: res.Flexible,
	}
	if def, ok := annotations.DeclaredDefault(anns); ok {
		payload.Default = renderDefault(def)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func renderDefault(def annotations.Default) string {
	if def.Kind == annotations.DefaultString {
		return fmt.Sprintf("%q", def.Value)
	}
	return "null"
}
