package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dreamhouse/internal/client"
	"dreamhouse/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultServer = "http://localhost:5000"

type remoteOptions struct {
	server string
	output string
}

func (o *remoteOptions) client() *client.Client {
	return client.New(strings.TrimRight(o.server, "/"), zap.NewNop())
}

func newRemoteCmd() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Call a running dreamhouse server",
	}

	server := os.Getenv("DREAMHOUSE_SERVER")
	if server == "" {
		server = defaultServer
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", server, "Server base URL (env DREAMHOUSE_SERVER)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputYAML, "Output format: yaml or json")

	cmd.AddCommand(newRemoteGenerateCmd(opts))
	cmd.AddCommand(newRemoteSaveCmd(opts))
	cmd.AddCommand(newRemoteListCmd(opts))
	cmd.AddCommand(newRemoteGetCmd(opts))

	return cmd
}

func newRemoteGenerateCmd(opts *remoteOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Generate a layout on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().Generate(cmd.Context(), strings.Join(args, " "), name)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts.output, res)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", domain.DefaultDesignName, "Project name")
	return cmd
}

func newRemoteSaveCmd(opts *remoteOptions) *cobra.Command {
	var (
		name       string
		layoutFile string
	)

	cmd := &cobra.Command{
		Use:   "save [prompt...]",
		Short: "Save a design",
		Long: `Saves a design on the server. The layout is read from --layout (a JSON file, or - for stdin).
Without --layout the server generates one from the prompt first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			text := strings.Join(args, " ")

			var layout json.RawMessage
			switch layoutFile {
			case "":
				res, err := c.Generate(cmd.Context(), text, name)
				if err != nil {
					return err
				}
				if layout, err = json.Marshal(res.Layout); err != nil {
					return fmt.Errorf("encode layout: %w", err)
				}
			default:
				b, err := readLayout(cmd.InOrStdin(), layoutFile)
				if err != nil {
					return err
				}
				layout = b
			}

			if err := c.Save(cmd.Context(), name, text, layout); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "saved")
			return err
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", domain.DefaultDesignName, "Project name")
	cmd.Flags().StringVar(&layoutFile, "layout", "", "Layout JSON file, - for stdin")
	return cmd
}

func readLayout(stdin io.Reader, path string) (json.RawMessage, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("layout in %s is not valid JSON", path)
	}
	return json.RawMessage(b), nil
}

func newRemoteListCmd(opts *remoteOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved designs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			designs, err := opts.client().List(cmd.Context())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), opts.output, designs)
		},
	}
}

// designView is DesignDetail with data decoded, so YAML prints it as a document.
type designView struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Prompt    string `json:"prompt" yaml:"prompt"`
	Data      any    `json:"data" yaml:"data"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

func newRemoteGetCmd(opts *remoteOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one saved design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid design id %q", args[0])
			}
			d, err := opts.client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			view := designView{ID: d.ID, Name: d.Name, Prompt: d.Prompt, CreatedAt: d.CreatedAt}
			if err := json.Unmarshal(d.Data, &view.Data); err != nil {
				return fmt.Errorf("decode design data: %w", err)
			}
			return printResult(cmd.OutOrStdout(), opts.output, view)
		},
	}
}
