package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/speedata/optionparser"

	"github.com/labelpress/labelpress/backend/bag"
	"github.com/labelpress/labelpress/backend/linebreak"
	"github.com/labelpress/labelpress/config"
	"github.com/labelpress/labelpress/frontend"
)

type options struct {
	configfile  string
	debug       bool
	port        string
	protocol    string
	width       string
	size        string
	family      string
	align       string
	language    string
	nohyphenate bool
	variables   map[string]string
	settings    map[string]string
}

func dothings() error {
	opts := options{
		variables: make(map[string]string),
		settings:  make(map[string]string),
	}
	op := optionparser.NewOptionParser()
	op.Banner = "labelpress - label layout and print server\n\nUsage: labelpress [options] command [arguments]"
	op.On("-c", "--config NAME", "Read the YAML configuration file NAME", &opts.configfile)
	op.On("--debug", "Log debug messages", &opts.debug)
	op.On("--port PORT", "Listen on PORT (serve)", &opts.port)
	op.On("--protocol NAME", "Printer protocol sdk or label", &opts.protocol)
	op.On("--width LENGTH", "Block width, for example 40mm or 120pt (layout)", &opts.width)
	op.On("--size SIZE", "Font size in points (layout)", &opts.size)
	op.On("--family NAME", "Font family (layout)", &opts.family)
	op.On("--align ALIGN", "left, center or right (layout)", &opts.align)
	op.On("--language LANG", "Hyphenation language (layout)", &opts.language)
	op.On("--nohyphenation", "Switch off hyphenation (layout)", &opts.nohyphenate)
	op.On("--set KEY=VALUE", "Replace {{KEY}} by VALUE (compile, print)", opts.variables)
	op.On("--setting KEY=VALUE", "Override a print setting (compile, print)", opts.settings)
	op.Command("serve", "Run the HTTP server")
	op.Command("layout", "Print the wrapped lines of a text")
	op.Command("compile", "Print the encoded job for a layout file")
	op.Command("print", "Send a layout file to the printer")
	op.Command("fonts", "List the known font families")
	if err := op.Parse(); err != nil {
		return err
	}
	if opts.debug {
		bag.SetLogLevel(bag.DebugLevel)
	}
	if len(op.Extra) == 0 {
		op.Help()
		return nil
	}

	cfg, err := config.Load(opts.configfile)
	if err != nil {
		return err
	}
	if opts.debug || cfg.Debug || cfg.Printer.Debug {
		bag.SetLogLevel(bag.DebugLevel)
	}
	if opts.port != "" {
		if cfg.Port, err = strconv.Atoi(opts.port); err != nil {
			return bag.Invalidf("port %q is not a number", opts.port)
		}
	}
	if opts.protocol != "" {
		cfg.Printer.Protocol = opts.protocol
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	switch op.Extra[0] {
	case "serve":
		return a.serve()
	case "layout":
		return a.layout(&opts, strings.Join(op.Extra[1:], " "))
	case "compile", "print":
		if len(op.Extra) != 2 {
			return bag.Invalidf("%s needs exactly one layout file", op.Extra[0])
		}
		return a.compileFile(&opts, op.Extra[1], op.Extra[0] == "print")
	case "fonts":
		for _, name := range a.fonts.Families() {
			fmt.Println(name)
		}
		return nil
	}
	op.Help()
	return fmt.Errorf("unknown command %q", op.Extra[0])
}

func (a *app) serve() error {
	gin.SetMode(gin.ReleaseMode)
	s, err := a.server()
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(a.cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errc := make(chan error, 1)
	go func() {
		bag.Logger.Infof("Listening on http://localhost:%d, layouts in %s", a.cfg.Port, s.Store.Root())
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	bag.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (a *app) layout(opts *options, text string) error {
	if text == "" {
		return bag.Invalidf("layout needs a text")
	}
	width := 200.0
	if opts.width != "" {
		if w, err := strconv.ParseFloat(opts.width, 64); err == nil {
			width = w
		} else {
			mm, err := bag.ParseLength(opts.width, a.converter.DPI)
			if err != nil {
				return err
			}
			width = mm / bag.MMPerInch * bag.PointsPerInch
		}
	}
	size := 12.0
	if opts.size != "" {
		s, err := strconv.ParseFloat(opts.size, 64)
		if err != nil {
			return bag.Invalidf("font size %q is not a number", opts.size)
		}
		size = s
	}
	res, err := a.breaker.Layout(context.Background(), linebreak.Request{
		Text:       text,
		FontSize:   size,
		FontFamily: opts.family,
		Align:      linebreak.ParseAlignment(opts.align),
		BlockWidth: width,
		Hyphenate:  a.converter.Hyphenate && !opts.nohyphenate,
		Language:   opts.language,
	})
	if err != nil {
		return err
	}
	for _, l := range res.Lines {
		fmt.Printf("%-*s| %6.2f\n", maxRunes(res.Lines), l.Text, l.Width)
	}
	fmt.Printf("line height %.2f, block width %.2f, fallback metrics %t\n", res.LineHeight, res.BlockWidth, res.Fallback)
	return nil
}

func maxRunes(lines []linebreak.Line) int {
	m := 0
	for _, l := range lines {
		if n := len([]rune(l.Text)); n > m {
			m = n
		}
	}
	return m
}

func (a *app) compileFile(opts *options, filename string, send bool) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	doc, err := frontend.ParseDocument(data)
	if err != nil {
		return err
	}
	if len(opts.variables) > 0 {
		doc = frontend.ReplacePlaceholders(doc, opts.variables)
	}
	settings := a.converter.Settings
	for k, v := range opts.settings {
		if err := settings.Set(k, v); err != nil {
			return err
		}
	}
	ctx := context.Background()
	job, skips, err := a.converter.Compile(ctx, doc, settings)
	if err != nil {
		return err
	}
	for _, s := range skips {
		fmt.Fprintln(os.Stderr, "skipped", s)
	}
	if !send {
		payload, err := job.Encode(a.dispatcher.Encoding, a.dispatcher.Printer)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	res, err := a.dispatcher.Dispatch(ctx, job)
	if err != nil {
		return err
	}
	bag.Logger.Infof("Job %d accepted: %s", res.RequestID, res.Response)
	return nil
}

func main() {
	if err := dothings(); err != nil {
		bag.LogError(err)
		os.Exit(1)
	}
}
