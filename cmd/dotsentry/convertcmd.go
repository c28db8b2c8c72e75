package dotsentry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsentry/dotsentry/internal/convert"
)

var (
	flagConvertTo      string
	flagConvertOut     string
	flagConvertInclude string
	flagConvertExclude string
	flagConvertPrefix  string
	flagConvertXform   string
	flagConvertBase64  bool
	flagConvertList    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert an env file to another format",
		Long:  "Projects a parsed env file into deployment formats: " + joinNames() + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConvert,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagConvertTo, "to", "json", "output format")
	cmd.Flags().StringVarP(&flagConvertOut, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&flagConvertInclude, "include", "", "only variables matching this glob")
	cmd.Flags().StringVar(&flagConvertExclude, "exclude", "", "drop variables matching this glob")
	cmd.Flags().StringVar(&flagConvertPrefix, "prefix", "", "prepend this prefix to every name")
	cmd.Flags().StringVar(&flagConvertXform, "transform", "", "rewrite names: upper|lower|camel|snake")
	cmd.Flags().BoolVar(&flagConvertBase64, "base64", false, "base64-encode all values")
	cmd.Flags().BoolVar(&flagConvertList, "list", false, "list available formats and exit")
}

func joinNames() string {
	out := ""
	for i, n := range convert.Names() {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func runConvert(_ *cobra.Command, args []string) error {
	if flagConvertList {
		for _, c := range convert.All() {
			fmt.Printf("%-16s %s\n", c.Name(), c.Description())
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one env file (or --list)")
	}

	c, ok := convert.Get(flagConvertTo)
	if !ok {
		return fmt.Errorf("unknown format %q (available: %s)", flagConvertTo, joinNames())
	}

	local, global := loadConfigs()
	cfg := parserConfig(local, global)
	m, err := parseFile(args[0], cfg)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	out, err := c.Convert(m, convert.Options{
		Include:   flagConvertInclude,
		Exclude:   flagConvertExclude,
		Prefix:    flagConvertPrefix,
		Transform: convert.KeyTransform(flagConvertXform),
		Base64:    flagConvertBase64,
	})
	if err != nil {
		return err
	}

	if flagConvertOut != "" {
		return os.WriteFile(flagConvertOut, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}
