package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/svioletg/scoreboard2json/filters"
	"github.com/svioletg/scoreboard2json/parsers"
	"github.com/svioletg/scoreboard2json/scoreboard"
	"github.com/svioletg/scoreboard2json/writers"
)

const (
	inputFlag           = "input"
	outputFlag          = "output"
	whitelistFlag       = "whitelist"
	blacklistFlag       = "blacklist"
	includeDotNamesFlag = "include-dot-names"
	rankFlag            = "rank"
	ascendingFlag       = "ascending"
	formatFlag          = "format"
	verboseFlag         = "verbose"

	stdoutCLIName = "-"
	envPrefix     = "SCOREBOARD2JSON_"

	formatJSON = "json"
	formatYAML = "yaml"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

type cliOptions struct {
	input           string
	output          string
	whitelistPath   string
	blacklistPath   string
	includeDotNames bool
	rankObjective   string
	ascending       bool
	format          string
	verbose         bool
}

func buildFilter(opts cliOptions) (*filters.PlayerFilter, error) {
	// Reject the conflict before touching any file.
	if opts.whitelistPath != "" && opts.blacklistPath != "" {
		return nil, filters.ErrConflictingLists
	}

	var whitelist, blacklist []string
	if opts.whitelistPath != "" {
		var err error
		if whitelist, err = filters.LoadWhitelist(opts.whitelistPath); err != nil {
			return nil, err
		}
	}
	if opts.blacklistPath != "" {
		var err error
		if blacklist, err = filters.LoadBlacklist(opts.blacklistPath); err != nil {
			return nil, err
		}
	}
	return filters.New(whitelist, blacklist, opts.includeDotNames)
}

func writeRanks(w io.Writer, ranks []scoreboard.PlayerRank, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ranks)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ranks); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func cliHandle(opts cliOptions, outputWriter io.Writer) error {
	filter, err := buildFilter(opts)
	if err != nil {
		return err
	}

	board, err := parsers.ParseFile(opts.input, filter)
	if err != nil {
		return err
	}

	if opts.rankObjective != "" {
		ranks := board.RankByObjective(opts.rankObjective, opts.ascending)
		if len(ranks) == 0 {
			log.Warnf("objective %q has no scores", opts.rankObjective)
		}
		return writeRanks(outputWriter, ranks, opts.format)
	}

	switch opts.format {
	case formatJSON:
		return board.WriteJSON(outputWriter)
	case formatYAML:
		return board.WriteYAML(outputWriter)
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}

func main() {
	godotenv.Load()

	opts := cliOptions{}
	app := &cli.App{
		Name:    "scoreboard2json",
		Usage:   "A tool to turn Minecraft scoreboard data into JSON dumps and objective rankings",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        inputFlag,
				Aliases:     []string{"i"},
				Usage:       "Path to a scoreboard.dat file or a JSON dump produced by this tool",
				Destination: &opts.input,
				Required:    true,
				EnvVars:     []string{envPrefix + "INPUT"},
			},
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "The location to write the result. Can be a file path or \"-\" (for stdout).",
				Destination: &opts.output,
				Value:       stdoutCLIName,
				EnvVars:     []string{envPrefix + "OUTPUT"},
			},
			&cli.StringFlag{
				Name:        whitelistFlag,
				Usage:       "Path to a whitelist.json; only scores of listed players are kept",
				Destination: &opts.whitelistPath,
				EnvVars:     []string{envPrefix + "WHITELIST"},
			},
			&cli.StringFlag{
				Name:        blacklistFlag,
				Usage:       "Path to a whitelist.json-format file; scores of listed players are dropped",
				Destination: &opts.blacklistPath,
				EnvVars:     []string{envPrefix + "BLACKLIST"},
			},
			&cli.BoolFlag{
				Name:        includeDotNamesFlag,
				Usage:       "Always keep scores of players whose name starts with a dot, even under a whitelist",
				Destination: &opts.includeDotNames,
				Value:       true,
				EnvVars:     []string{envPrefix + "INCLUDE_DOT_NAMES"},
			},
			&cli.StringFlag{
				Name:        rankFlag,
				Usage:       "Output a ranking for the named objective instead of the full dump",
				Destination: &opts.rankObjective,
				EnvVars:     []string{envPrefix + "RANK"},
			},
			&cli.BoolFlag{
				Name:        ascendingFlag,
				Usage:       "Sort rankings lowest to highest",
				Destination: &opts.ascending,
				EnvVars:     []string{envPrefix + "ASCENDING"},
			},
			&cli.StringFlag{
				Name:        formatFlag,
				Usage:       "Output encoding: json or yaml",
				Destination: &opts.format,
				Value:       formatJSON,
				EnvVars:     []string{envPrefix + "FORMAT"},
			},
			&cli.BoolFlag{
				Name:        verboseFlag,
				Aliases:     []string{"v"},
				Usage:       "Enable debug logging",
				Destination: &opts.verbose,
				EnvVars:     []string{envPrefix + "VERBOSE"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			var outputWriter io.WriteCloser = os.Stdout
			if opts.output != stdoutCLIName {
				outputWriter = writers.NewLazyFileWriter(opts.output)
			}
			if err := cliHandle(opts, outputWriter); err != nil {
				return err
			}
			if outputWriter != os.Stdout {
				return outputWriter.Close()
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
