package fetch

import (
	"crypto/tls"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	progressbar "github.com/schollz/progressbar/v3"
)

type options struct {
	port     int
	user     string
	password string
	insecure bool
	timeout  time.Duration
	output   string

	noProgress bool
}

type Option interface {
	apply(*options)
}

type portOption int

func (o portOption) apply(opts *options) {
	opts.port = int(o)
}

func WithPort(port int) Option {
	return portOption(port)
}

type userOption string

func (o userOption) apply(opts *options) {
	opts.user = string(o)
}

func WithUser(user string) Option {
	return userOption(user)
}

type passwordOption string

func (o passwordOption) apply(opts *options) {
	opts.password = string(o)
}

func WithPassword(password string) Option {
	return passwordOption(password)
}

type insecureOption bool

func (o insecureOption) apply(opts *options) {
	opts.insecure = bool(o)
}

func WithInsecure(insecure bool) Option {
	return insecureOption(insecure)
}

type timeoutOption time.Duration

func (o timeoutOption) apply(opts *options) {
	opts.timeout = time.Duration(o)
}

func WithTimeout(timeout time.Duration) Option {
	return timeoutOption(timeout)
}

type outputOption string

func (o outputOption) apply(opts *options) {
	opts.output = string(o)
}

func WithOutput(output string) Option {
	return outputOption(output)
}

type noProgressOption bool

func (o noProgressOption) apply(opts *options) {
	opts.noProgress = bool(o)
}

func WithNoProgress(noProgress bool) Option {
	return noProgressOption(noProgress)
}

// Fetch downloads the sysinfo dump from an appliance's management console
// and writes it to the output file. Appliances that refuse GET /sysinfo
// (old firmware) are retried with POST. All network policy lives here; the
// parser itself does no I/O.
func Fetch(host string, opts ...Option) error {
	options := &options{
		port:    8082,
		user:    "admin",
		timeout: 5 * time.Minute,
		output:  "sysinfo.txt",
	}
	for _, o := range opts {
		o.apply(options)
	}

	u := url.URL{
		Scheme: "https",
		Host:   net.JoinHostPort(host, strconv.Itoa(options.port)),
		Path:   "/sysinfo",
	}

	slog.Info("Fetch sysinfo", "url", u.String())

	client := &http.Client{
		Timeout: options.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: options.insecure},
		},
	}

	resp, err := do(client, http.MethodGet, u.String(), options)
	if err != nil {
		return errors.Wrapf(err, "get %s", u.String())
	}
	if resp.StatusCode == http.StatusMethodNotAllowed {
		resp.Body.Close()
		resp, err = do(client, http.MethodPost, u.String(), options)
		if err != nil {
			return errors.Wrapf(err, "post %s", u.String())
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected response. expected: %d, actual: %d", http.StatusOK, resp.StatusCode)
	}

	if dir := filepath.Dir(options.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}
	f, err := os.Create(options.output)
	if err != nil {
		return errors.Wrapf(err, "create %s", options.output)
	}
	defer f.Close()

	pb := func() *progressbar.ProgressBar {
		if options.noProgress {
			return progressbar.DefaultBytesSilent(resp.ContentLength)
		}
		return progressbar.DefaultBytes(resp.ContentLength, "downloading")
	}()
	defer pb.Finish()

	if _, err := io.Copy(io.MultiWriter(f, pb), resp.Body); err != nil {
		return errors.Wrapf(err, "write to %s", options.output)
	}

	return nil
}

func do(client *http.Client, method, url string, options *options) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	if options.user != "" {
		req.SetBasicAuth(options.user, options.password)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return resp, nil
}
