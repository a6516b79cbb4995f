package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/digest"
	"github.com/abdul-hamid-achik/sheetfn/packages/output"
	"github.com/abdul-hamid-achik/sheetfn/packages/template"
	"github.com/spf13/cobra"
)

var (
	uuidCountFlag int
	noDecodeFlag  bool
)

var hashCmd = &cobra.Command{
	Use:   "hash <algorithm> <input>",
	Short: "Hash a cell or range (HASH_*)",
	Long: `Hash every cell of input and print lowercase hex digests in the same shape.

Algorithms: md2, md5, sha1, sha256, sha384, sha512, sha3_256, sha3_512, blake2b_256

Examples:
  sheetfn hash sha256 "hello world"
  sheetfn hash md5 @emails.tsv`,
	Args:      usageArgs(cobra.ExactArgs(2)),
	ValidArgs: algorithmNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := digest.Lookup(args[0])
		if err != nil {
			return usageError{err}
		}
		return runFunction(cmd, "HASH_"+string(alg), args[1:])
	},
}

var uuidCmd = &cobra.Command{
	Use:   "uuid [range]",
	Short: "Generate random UUIDs (RAND_UUID)",
	Long: `Print a random UUID. With a range argument, print one UUID per cell in
the same shape; --count prints a column of n UUIDs.

Examples:
  sheetfn uuid
  sheetfn uuid --count 5
  sheetfn uuid @ids.tsv`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		if uuidCountFlag < 0 {
			return usageError{errors.New("--count must not be negative")}
		}
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		inputs, err := readArgs(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if uuidCountFlag > 0 && len(inputs) == 0 {
			rows := make([][]string, uuidCountFlag)
			for i := range rows {
				rows[i] = []string{""}
			}
			inputs = append(inputs, cell.Grid(rows))
		}
		return s.call(cmd.Context(), "RAND_UUID", inputs)
	},
}

var templateCmd = &cobra.Command{
	Use:   "template <template> <values>",
	Short: "Render $[N] placeholders for every row (PARSE_TEMPLATE)",
	Long: `Replace $[0], $[1], ... in template with the columns of each row of values.

Examples:
  sheetfn template 'Good $[1] $[0]!' @people.tsv
  printf 'Ann\tmorning\n' | sheetfn template 'Good $[1] $[0]!' -`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: templateCommand,
}

var paramsCmd = &cobra.Command{
	Use:   "params <url> [keys]",
	Short: "Extract query parameters (EXTRACT_PARAMS)",
	Long: `Extract query parameter values from each URL, one row per URL. keys is a
comma-separated list or a range; without it every parameter is returned.

Examples:
  sheetfn params "https://example.com/?a=1&b=2" b,a
  sheetfn params @urls.tsv --no-decode`,
	Args: usageArgs(cobra.RangeArgs(1, 2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, "EXTRACT_PARAMS", args)
	},
}

var utmCmd = &cobra.Command{
	Use:   "utm <url> [utms]",
	Short: "Extract UTM parameters (EXTRACT_UTM)",
	Long: `Extract utm_* values from each URL, one row per URL. Names may omit the
utm_ prefix. Defaults to source, medium, campaign, content and term.

Examples:
  sheetfn utm "https://x.y/?utm_source=google&utm_medium=cpc"
  sheetfn utm @urls.tsv campaign,source -o csv`,
	Args: usageArgs(cobra.RangeArgs(1, 2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, "EXTRACT_UTM", args)
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Percent-encode a URI component (ENCODE_URI)",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFunction(cmd, "ENCODE_URI", args)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <text>",
	Short: "Decode a URI component (DECODE_URI)",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFunction(cmd, "DECODE_URI", args)
	},
}

func init() {
	uuidCmd.Flags().IntVarP(&uuidCountFlag, "count", "n", 0, "Number of UUIDs to generate")

	for _, c := range []*cobra.Command{paramsCmd, utmCmd} {
		c.Flags().BoolVar(&noDecodeFlag, "no-decode", false, "Keep %XX escapes in values")
	}

	rootCmd.AddCommand(hashCmd, uuidCmd, templateCmd, paramsCmd, utmCmd, encodeCmd, decodeCmd)
}

func runFunction(cmd *cobra.Command, name string, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	inputs, err := readArgs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	return s.call(cmd.Context(), name, inputs)
}

func templateCommand(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	inputs, err := readArgs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	// Columns past the end of a row render empty; point that out.
	_, cols := cell.Dims(inputs[1])
	for _, idx := range template.Placeholders(cell.Cells(inputs[0])[0]) {
		if idx >= cols {
			output.FormatWarning(s.stderr, fmt.Sprintf("$[%d] is past the last column of values ($[%d])", idx, cols-1), s.cfg.GetNoColor())
		}
	}
	return s.call(cmd.Context(), "PARSE_TEMPLATE", inputs)
}

func runExtract(cmd *cobra.Command, name string, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	inputs, err := readArgs(args[:1], cmd.InOrStdin())
	if err != nil {
		return err
	}

	keys := cell.Scalar("")
	if len(args) > 1 {
		if keys, err = keysArg(args[1], cmd); err != nil {
			return err
		}
	}

	decode := s.cfg.GetDecodeURI() && !noDecodeFlag
	inputs = append(inputs, keys, cell.Scalar(strconv.FormatBool(decode)))
	return s.call(cmd.Context(), name, inputs)
}

// keysArg reads a key list. A plain argument is split on commas into one row.
func keysArg(arg string, cmd *cobra.Command) (cell.Input[string], error) {
	in, err := readArg(arg, cmd.InOrStdin())
	if err != nil || in.IsGrid() {
		return in, err
	}

	var keys []string
	for _, k := range strings.Split(in.Value(), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return cell.Scalar(""), nil
	}
	return cell.Grid([][]string{keys}), nil
}

func algorithmNames() []string {
	var names []string
	for _, alg := range digest.Algorithms() {
		names = append(names, strings.ToLower(string(alg)))
	}
	return names
}
