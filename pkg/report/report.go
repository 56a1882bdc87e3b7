package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/sysinfo/cpe"
	"github.com/swg-tools/sginfo/pkg/sysinfo/load"
)

type options struct {
	format string
}

type Option interface {
	apply(*options)
}

type formatOption string

func (o formatOption) apply(opts *options) {
	opts.format = string(o)
}

func WithFormat(format string) Option {
	return formatOption(format)
}

// Report parses a sysinfo dump and writes the requested view of it to
// stdout. The summary format is a single semicolon separated line so it
// stays friendly to shell pipelines.
func Report(path string, opts ...Option) error {
	options := &options{
		format: "summary",
	}
	for _, o := range opts {
		o.apply(options)
	}

	r, err := load.File(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	switch options.format {
	case "summary":
		if _, err := fmt.Fprintf(os.Stdout, "%s;%s;%s;%s;%s\n", r.ApplianceName, r.ModelNumber, r.SerialNumber, r.SGOSVersion, r.SGOSReleaseID); err != nil {
			return errors.Wrap(err, "write summary")
		}
	case "json":
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "  ")
		if err := e.Encode(r); err != nil {
			return errors.Wrap(err, "encode json")
		}
	case "cpe":
		name, err := cpe.FromReport(r)
		if err != nil {
			return errors.Wrap(err, "derive cpe")
		}
		if _, err := fmt.Fprintln(os.Stdout, name); err != nil {
			return errors.Wrap(err, "write cpe")
		}
	default:
		return errors.Errorf("unexpected format. expected: %q, actual: %q", []string{"summary", "json", "cpe"}, options.format)
	}

	return nil
}

// Sections prints the names of the sections found in a sysinfo dump.
func Sections(path string) error {
	r, err := load.File(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	for _, n := range r.SectionNames() {
		if _, err := fmt.Fprintln(os.Stdout, n); err != nil {
			return errors.Wrap(err, "write section name")
		}
	}
	return nil
}

// Section prints the raw body of a single named section.
func Section(path, name string) error {
	r, err := load.File(path)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	body, ok := r.Section(name)
	if !ok {
		return errors.Errorf("no section %s", name)
	}
	if _, err := fmt.Fprintln(os.Stdout, body); err != nil {
		return errors.Wrap(err, "write section")
	}
	return nil
}
