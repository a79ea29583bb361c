package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/wsdl"
)

func (a *app) newFmtCmd() *cobra.Command {
	var schema bool
	var output string
	cmd := &cobra.Command{
		Use:   "fmt <document>",
		Short: "Read a document and write it back in canonical form",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.format(args[0], output, schema)
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "treat the document as a standalone XML Schema")
	cmd.Flags().String("indent", "", "indentation for nested elements")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cobra.CheckErr(a.v.BindPFlag("indent", cmd.Flags().Lookup("indent")))
	return cmd
}

func (a *app) format(path, output string, schema bool) (err error) {
	in, err := a.open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	ropts := wsdl.NewReadOptions().WithLogger(a.log)
	wopts := wsdl.NewWriteOptions().WithLogger(a.log).WithIndent(a.v.GetString("indent"))
	if err := wopts.Validate(); err != nil {
		return &usageError{err: err}
	}

	var out io.Writer = a.stdout
	if output != "" {
		f, createErr := os.Create(output)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", output, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", output, closeErr)
			}
		}()
		out = f
	}
	buf := bufio.NewWriter(out)

	if schema {
		s, err := wsdl.ReadSchema(in, ropts)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := wsdl.WriteSchema(buf, s, wopts); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	} else {
		sd, err := wsdl.ReadWithOptions(in, ropts)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := wsdl.WriteWithOptions(buf, sd, wopts); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if _, err := buf.WriteString("\n"); err != nil {
		return err
	}
	a.log.Debug().Str("document", path).Bool("schema", schema).Msg("formatted")
	return buf.Flush()
}

// open returns stdin for "-".
func (a *app) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
