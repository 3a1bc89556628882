// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/astdoc

// astdoc generates markdown API reference from documentation AST sections.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/astdoc"
)

// defaultEnvFile is read for ASTDOC_* overrides when present.
const defaultEnvFile = ".env"

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/astdoc"
	_buildTime string
)

// cliOptions describes astdoc CLI flags and subcommands.
type cliOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Log debug diagnostics to stderr"`

	Version          versionCommand            `command:"version" description:"Print version information"`
	SectionsToMD     sectionsToMarkdownCommand `command:"ast2md" description:"Convert documentation AST to markdown"`
	SectionsToHTML   sectionsToHTMLCommand     `command:"ast2html" description:"Convert documentation AST to HTML preview page"`
	Batch            batchCommand              `command:"batch" description:"Convert several AST files concurrently"`
	ValidateSections validateCommand           `command:"validate" description:"Report structural problems in documentation AST"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	Title           string `short:"T" long:"title" description:"Markdown document title" default:"API reference"`
	Flavor          string `short:"F" long:"flavor" description:"Output flavor" choice:"markdown" choice:"html" default:"markdown"`
	ParamLayout     string `short:"t" long:"param-layout" description:"Parameter block layout" choice:"list" choice:"table" default:"list"`
	Signatures      string `short:"s" long:"signatures" description:"Signature block emission" choice:"auto" choice:"always" choice:"off" default:"auto"`
	EscapeSet       string `short:"e" long:"escape-set" description:"Characters escaped in type strings (flavor default when omitted)" choice:"html" choice:"markdown" choice:"strict"`
	NoLinks         bool   `long:"no-links" description:"Disable type name cross-links in html flavor"`
	NoTOC           bool   `long:"no-toc" description:"Omit table of contents"`
	IncludePrivate  bool   `short:"p" long:"include-private" description:"Keep sections with private access"`
	Metadata        bool   `short:"m" long:"metadata" description:"Add kind, scope, longname and source location list to sections"`
	WrapWidth       int    `short:"w" long:"wrap" description:"Wrap width for description paragraphs (0 disables wrapping)" default:"80"`
	ListMarker      string `short:"l" long:"list-marker" description:"Unordered list marker" choice:"-" choice:"*" default:"*"`
	ExampleLanguage string `long:"example-language" description:"Code fence language for examples" default:"js"`
	InputFormat     string `short:"i" long:"input-format" description:"Input decoder" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
}

// inputFlags groups option sources and strict mode.
type inputFlags struct {
	ConfigPath string `short:"c" long:"config" description:"YAML config file with render options"`
	Strict     bool   `long:"strict" description:"Fail when documentation AST has structural problems"`
}

// sectionsToMarkdownCommand converts AST input to markdown.
type sectionsToMarkdownCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input AST file path, JSON or YAML, optionally .gz/.zst (stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags  inputFlags          `group:"Input"`
	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs ast2md subcommand.
func (command *sectionsToMarkdownCommand) Execute(_ []string) error {
	opt, err := command.runner.resolveOptions("ast2md", &command.RenderFlags, command.InputFlags.ConfigPath)
	if err != nil {
		return err
	}

	rendered, err := command.runner.renderInput(command.Args.Input, opt, command.InputFlags.Strict)
	if err != nil {
		return err
	}

	return command.runner.writeOutput(command.Args.Output, []byte(rendered), "markdown")
}

// sectionsToHTMLCommand converts AST input to a standalone HTML page.
type sectionsToHTMLCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input AST file path, JSON or YAML, optionally .gz/.zst (stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output HTML file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags  inputFlags          `group:"Input"`
	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs ast2html subcommand.
func (command *sectionsToHTMLCommand) Execute(_ []string) error {
	opt, err := command.runner.resolveOptions("ast2html", &command.RenderFlags, command.InputFlags.ConfigPath)
	if err != nil {
		return err
	}

	rendered, err := command.runner.renderInput(command.Args.Input, opt, command.InputFlags.Strict)
	if err != nil {
		return err
	}

	return command.runner.writeOutput(command.Args.Output, markdownToHTML(rendered, opt.Title), "html")
}

// batchCommand converts many AST files into an output directory.
type batchCommand struct {
	runner    *cliRunner
	OutputDir string `short:"o" long:"out-dir" description:"Directory for generated markdown files" required:"yes"`
	Jobs      int    `short:"j" long:"jobs" description:"Maximum number of files rendered at once" default:"4"`
	Args      struct {
		Inputs []string `positional-arg-name:"inputs" description:"Input AST file paths" required:"1"`
	} `positional-args:"yes"`

	InputFlags  inputFlags          `group:"Input"`
	RenderFlags markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs batch subcommand.
func (command *batchCommand) Execute(_ []string) error {
	opt, err := command.runner.resolveOptions("batch", &command.RenderFlags, command.InputFlags.ConfigPath)
	if err != nil {
		return err
	}

	return command.runner.runBatch(command.Args.Inputs, command.OutputDir, command.Jobs, opt, command.InputFlags.Strict)
}

// validateCommand reports structural AST problems.
type validateCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input AST file path (stdin when omitted)"`
	} `positional-args:"yes"`

	InputFormat string `short:"i" long:"input-format" description:"Input decoder" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
}

// Execute runs validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.Args.Input, astdoc.InputFormat(command.InputFormat))
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	envFile     string
	lookupEnv   func(name string) (string, bool)
	parser      *flags.Parser
	logger      zerolog.Logger
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "astdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		envFile:     defaultEnvFile,
		lookupEnv:   os.LookupEnv,
		logger:      newLogger(stderr, false),
	}

	return runner.run(args)
}

// newLogger builds console logger for CLI diagnostics.
func newLogger(output io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:          zerolog.SyncWriter(output),
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(writer).Level(level)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// renderInput reads, optionally validates and renders one AST input.
func (runner *cliRunner) renderInput(inputPath string, opt astdoc.Options, strict bool) (string, error) {
	sections, source, err := runner.readSectionsInput(inputPath, opt.InputFormat)
	if err != nil {
		return "", fmt.Errorf("read sections input: %w", err)
	}

	return runner.renderSections(sections, source, opt, strict)
}

// renderSections renders decoded sections and logs excluded ones.
func (runner *cliRunner) renderSections(sections []astdoc.Section, source string, opt astdoc.Options, strict bool) (string, error) {
	if strict {
		if err := astdoc.Validate(sections); err != nil {
			return "", fmt.Errorf("validate %s: %w", source, err)
		}
	}

	kept, skipped := astdoc.SelectSections(sections, opt)
	for _, item := range skipped {
		runner.logger.Debug().
			Str("input", source).
			Str("section", item.Section.Name).
			Str("reason", string(item.Reason)).
			Msg("skip section")
	}

	runner.logger.Debug().
		Str("input", source).
		Int("sections", len(kept)).
		Int("skipped", len(skipped)).
		Msg("render sections")

	return astdoc.RenderDocument(sections, opt), nil
}

// runBatch renders every input into outputDir with bounded concurrency.
func (runner *cliRunner) runBatch(inputs []string, outputDir string, jobs int, opt astdoc.Options, strict bool) error {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("create output dir %q: %w", outputDir, err)
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(max(jobs, 1))

	for _, input := range inputs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sections, err := astdoc.ReadSectionsFile(input, opt.InputFormat)
			if err != nil {
				return fmt.Errorf("read %q: %w", input, err)
			}

			rendered, err := runner.renderSections(sections, input, opt, strict)
			if err != nil {
				return err
			}

			outputPath := filepath.Join(outputDir, batchOutputName(input))
			if err := os.WriteFile(outputPath, []byte(rendered), 0o600); err != nil {
				return fmt.Errorf("write markdown file %q: %w", outputPath, err)
			}

			runner.logger.Debug().Str("input", input).Str("output", outputPath).Msg("wrote markdown")
			return nil
		})
	}

	return group.Wait()
}

// batchOutputName maps input file name to markdown file name.
func batchOutputName(input string) string {
	name := filepath.Base(input)
	for _, suffix := range []string{".gz", ".zst"} {
		name = strings.TrimSuffix(name, suffix)
	}

	return strings.TrimSuffix(name, filepath.Ext(name)) + ".md"
}

// runValidate decodes input and reports structural problems.
func (runner *cliRunner) runValidate(inputPath string, format astdoc.InputFormat) error {
	sections, source, err := runner.readSectionsInput(inputPath, format)
	if err != nil {
		return fmt.Errorf("read sections input: %w", err)
	}

	if err := astdoc.Validate(sections); err != nil {
		return fmt.Errorf("validate %s: %w", source, err)
	}

	_, err = fmt.Fprintf(runner.stdout, "%s: %d sections ok\n", source, len(sections))
	return err
}

// readSectionsInput decodes sections from file path or stdin and returns source marker.
func (runner *cliRunner) readSectionsInput(path string, format astdoc.InputFormat) ([]astdoc.Section, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		sections, err := astdoc.ReadSectionsFile(path, format)
		if err != nil {
			return nil, "", err
		}

		return sections, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read stdin: empty input")
	}

	sections, err := astdoc.DecodeSections(data, format)
	if err != nil {
		return nil, "", err
	}

	return sections, "(stdin)", nil
}

// writeOutput writes result to stdout or file.
func (runner *cliRunner) writeOutput(outputPath string, data []byte, label string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", label, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", label, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.SectionsToMD.runner = runner
	options.SectionsToHTML.runner = runner
	options.Batch.runner = runner
	options.ValidateSections.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		runner.logger = newLogger(runner.stderr, options.Verbose)
		if command == nil {
			return nil
		}

		return command.Execute(args)
	}

	runner.parser = parser
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"ast2md": strings.TrimSpace(fmt.Sprintf(`
Convert documentation AST (for example `+"`jsdoc -X`"+` output) to markdown.
Reads sections from file argument or stdin; writes markdown to file argument or stdout.
Options are layered: flag defaults, --config file, ASTDOC_* environment (.env included), explicit flags.

Examples:
> $ %s ast2md api.json > API.md
> $ jsdoc -X src | %s ast2md -t table -F html --title "API" docs/API.md
`, programName, programName)),
		"ast2html": strings.TrimSpace(fmt.Sprintf(`
Render documentation AST to markdown and convert it to a standalone HTML page.

Examples:
> $ %s ast2html api.json preview.html
> $ %s ast2html -F html api.yaml.gz > preview.html
`, programName, programName)),
		"batch": strings.TrimSpace(fmt.Sprintf(`
Convert several AST files concurrently. Each input produces <name>.md in --out-dir.

Examples:
> $ %s batch -o docs core.json net.json.zst
> $ %s batch -j 8 --strict -o docs ast/*.json
`, programName, programName)),
		"validate": strings.TrimSpace(fmt.Sprintf(`
Report sections without names, deep parameters without declared parents and empty type unions.
Rendering ignores these problems; validate makes them visible.

Examples:
> $ %s validate api.json
> $ jsdoc -X src | %s validate
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, runner.programName, Version, Commit, BuildTime)
}
