// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command wikilist fetches one batch of the wiki list and prints it.
//
// Usage:
//
//	wikilist [--config file] [--env file] [--batch n] [--limit n] [--mode service|mock|target|stream] [--curl]
//
// With --curl the request is printed as a curl command and not sent.
package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/gogama/servicex"
	"github.com/gogama/servicex/config"
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/session"
	"github.com/gogama/servicex/target"
	"github.com/gogama/servicex/wiki"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "wikilist:", err)
		os.Exit(1)
	}
}

type options struct {
	configFile string
	envFile    string
	batch      int
	limit      int
	mode       string
	curl       bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("wikilist", pflag.ContinueOnError)
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&opts.envFile, "env", "", ".env file with SERVICEX_ variables")
	fs.IntVar(&opts.batch, "batch", 1, "batch number")
	fs.IntVar(&opts.limit, "limit", 1, "items per batch")
	fs.StringVar(&opts.mode, "mode", "service", "client to use: service, mock, target or stream")
	fs.BoolVar(&opts.curl, "curl", false, "print the request as a curl command instead of sending it")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.LoaderOptions{ConfigFile: opts.configFile, EnvFile: opts.envFile})
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Log)

	if opts.curl {
		client, err := newClient(cfg, logger)
		if err != nil {
			return err
		}
		curl, err := request.Curl(client.ListRequest(opts.batch, opts.limit), client.Service.Codec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, curl)
		return err
	}

	var list wiki.ListResponse
	switch opts.mode {
	case "service", "mock", "target":
		svc, err := newService(opts.mode, cfg, logger)
		if err != nil {
			return err
		}
		list, err = fetch(svc, opts.batch, opts.limit)
		if err != nil {
			return err
		}
	case "stream":
		c := &wiki.StreamClient{Scheme: cfg.Service.Scheme, Host: cfg.Service.Host}
		list, err = (<-c.Observe(context.Background(), opts.batch, opts.limit)).Get()
		if err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown mode %q", opts.mode)
	}

	_, err = fmt.Fprintf(stdout, "%+v\n", list)
	return err
}

func newClient(cfg *config.Config, logger zerolog.Logger) (*wiki.Client, error) {
	cp, err := cfg.Service.ParseCachePolicy()
	if err != nil {
		return nil, err
	}
	handlers := &servicex.HandlerGroup{}
	servicex.InstallLogging(handlers, logger)
	return &wiki.Client{
		Service: &servicex.Service{
			Session:  &session.HTTPSession{},
			Handlers: handlers,
		},
		Scheme:      cfg.Service.Scheme,
		Host:        cfg.Service.Host,
		Timeout:     cfg.Service.Timeout,
		CachePolicy: cp,
	}, nil
}

func newService(mode string, cfg *config.Config, logger zerolog.Logger) (wiki.Service, error) {
	switch mode {
	case "mock":
		return wiki.Mock{}, nil
	case "target":
		return &wiki.TargetClient{
			Provider: &target.Provider{Session: &session.HTTPSession{}},
			Base:     &url.URL{Scheme: cfg.Service.Scheme, Host: cfg.Service.Host},
		}, nil
	default:
		return newClient(cfg, logger)
	}
}

func fetch(svc wiki.Service, batch, limit int) (wiki.ListResponse, error) {
	results := make(chan servicex.Result[wiki.ListResponse], 1)
	svc.Fetch(batch, limit, func(r servicex.Result[wiki.ListResponse]) {
		results <- r
	})
	return (<-results).Get()
}
