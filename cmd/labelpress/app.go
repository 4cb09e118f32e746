package main

import (
	"os"

	"github.com/labelpress/labelpress/backend/font"
	"github.com/labelpress/labelpress/backend/lang"
	"github.com/labelpress/labelpress/backend/linebreak"
	"github.com/labelpress/labelpress/config"
	"github.com/labelpress/labelpress/frontend"
	"github.com/labelpress/labelpress/printer"
	"github.com/labelpress/labelpress/server"
	"github.com/labelpress/labelpress/storage"
)

// app holds the services built from one configuration.
type app struct {
	cfg        *config.Config
	fonts      *font.Registry
	breaker    *linebreak.Breaker
	converter  *frontend.Converter
	dispatcher *printer.Dispatcher
}

func newApp(cfg *config.Config) (*app, error) {
	fonts := font.NewRegistry(cfg.FontDir)
	if err := fonts.LoadIncludedFonts(); err != nil {
		return nil, err
	}
	if err := fonts.LoadReferenceFamilies(); err != nil {
		return nil, err
	}
	for _, f := range cfg.Fonts {
		if err := fonts.AddFamilyFile(f.Family, f.Bold, f.Italic, f.File); err != nil {
			return nil, err
		}
	}

	balance, err := linebreak.ParseBalancePolicy(cfg.Balance)
	if err != nil {
		return nil, err
	}
	languages := lang.NewLanguages(cfg.PatternsDir)
	if fi, err := os.Stat(cfg.PatternsDir); err == nil && fi.IsDir() {
		if err := languages.LoadDir(cfg.PatternsDir); err != nil {
			return nil, err
		}
	}
	breaker := linebreak.New(fonts, languages)
	breaker.Balance = balance
	if cfg.Language != "" {
		breaker.Language = cfg.Language
	}

	conv := frontend.NewConverter(breaker)
	conv.DPI = cfg.Printer.DPI
	conv.ScaleX = cfg.Printer.ScaleX
	conv.ScaleY = cfg.Printer.ScaleY
	conv.Protocol = cfg.Printer.Protocol
	conv.Hyphenate = cfg.Hyphenate
	conv.Settings = cfg.Settings

	d, err := printer.New(cfg.Printer.Host, cfg.Printer.Port, cfg.Printer.Name, cfg.Printer.Protocol)
	if err != nil {
		return nil, err
	}
	d.Timeout = cfg.Printer.Timeout()
	d.StatusTimeout = cfg.Printer.StatusTimeout()
	d.Converter = conv

	return &app{cfg: cfg, fonts: fonts, breaker: breaker, converter: conv, dispatcher: d}, nil
}

func (a *app) server() (*server.Server, error) {
	store, err := storage.New(a.cfg.LayoutsDir)
	if err != nil {
		return nil, err
	}
	return &server.Server{
		Store:      store,
		Converter:  a.converter,
		Dispatcher: a.dispatcher,
		CORSOrigin: a.cfg.CORSOrigin,
	}, nil
}
