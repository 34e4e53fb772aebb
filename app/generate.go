package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/config"
	"github.com/go-randomstring/randomstring/internal/daemon"
	"github.com/go-randomstring/randomstring/internal/db/controller/profile"
	"github.com/go-randomstring/randomstring/internal/generator"
	"github.com/go-randomstring/randomstring/internal/logger"
)

var (
	// ErrInvalidLength is returned for a length argument that is not a number.
	ErrInvalidLength = errors.New("length must be a non negative integer")
	// ErrLengthTooLarge is returned for a length above the configured maximum.
	ErrLengthTooLarge = errors.New("length exceeds the configured maximum")
	// ErrInvalidCount is returned for a count outside 1 and the configured maximum.
	ErrInvalidCount = errors.New("count out of range")
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [length]",
		Short: "Print random strings",
		Long: `Print random strings, one per line.

Options are taken from the built-in defaults, the [Generator] section of the
config file, a stored profile, RANDOMSTRING_* environment variables and the
flags, each overriding the ones before.`,
		Example: `  randomstring generate
  randomstring generate 12 --charset hex --capitalization uppercase
  randomstring generate 8 --readable --count 5
  randomstring generate --profile pin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitConsole("warn"); err != nil {
				return err //nolint:wrapcheck
			}

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			opts, err := generateOptions(v, &cfg, args)
			if err != nil {
				return err
			}

			count := v.GetInt("count")
			if count < 1 || count > cfg.Generator.MaxCount {
				return errors.Wrapf(ErrInvalidCount, "count %d, allowed 1 to %d", count, cfg.Generator.MaxCount)
			}

			gen, err := daemon.NewGenerator(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			for i := 0; i < count; i++ {
				s, err := gen.Generate(&opts)
				if err != nil {
					return err //nolint:wrapcheck
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			return nil
		},
	}

	flags := generateCmd.Flags()
	flags.Int("length", generator.DefaultLength, "length of each string, the positional argument wins")
	flags.String("charset", "", "preset name or literal characters, see 'randomstring presets'")
	flags.Bool("readable", false, "leave out 0, O, I and l")
	flags.String("capitalization", "", "uppercase or lowercase")
	flags.Int("count", 1, "number of strings")
	flags.String("profile", "", "stored profile to start from")

	for _, name := range []string{"length", "charset", "readable", "capitalization", "count", "profile"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return generateCmd
}

// generateOptions layers profile, environment, flags and the positional length over the config defaults.
func generateOptions(v *viper.Viper, cfg *config.Config, args []string) (generator.Options, error) {
	opts := cfg.Generator.Options()

	if name := v.GetString("profile"); name != "" {
		gdb, err := daemon.OpenDB(cfg)
		if err != nil {
			return opts, err //nolint:wrapcheck
		}

		p, err := profile.Get(gdb, name)
		if err != nil {
			return opts, errors.Wrapf(err, "profile %q", name)
		}

		opts = p.Options()
	}

	if v.IsSet("length") {
		opts.Length = v.GetInt("length")
	}

	if v.IsSet("charset") {
		opts.Charset = v.GetString("charset")
		opts.CharsetExplicit = true
	}

	if v.IsSet("readable") {
		opts.Readable = v.GetBool("readable")
	}

	if v.IsSet("capitalization") {
		opts.Capitalization = charset.Capitalization(v.GetString("capitalization"))
	}

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return opts, errors.Wrapf(ErrInvalidLength, "got %q", args[0])
		}

		opts.Length = n
	}

	if opts.Length > cfg.Generator.MaxLength {
		return opts, errors.Wrapf(ErrLengthTooLarge, "%d > %d", opts.Length, cfg.Generator.MaxLength)
	}

	return opts, nil
}
