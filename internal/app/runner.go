package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/showrunner-hq/showrunner-client/internal/config"
	"github.com/showrunner-hq/showrunner-client/pkg/httpclient"
	"github.com/showrunner-hq/showrunner-client/pkg/showrunner"
	"github.com/showrunner-hq/showrunner-client/pkg/transport"
)

// Request is one CLI invocation.
type Request struct {
	RPC        string
	ParamsFile string
	// ParamsData is an inline JSON or YAML document; it wins over ParamsFile.
	ParamsData string
	Output     string
}

// Runner wires the showrunner client with config and logging and executes RPCs.
type Runner struct {
	cfg    *config.Config
	client *showrunner.Client
	log    transport.Logger
	out    io.Writer
}

// NewRunner builds a runner from config. out receives rendered responses.
func NewRunner(cfg *config.Config, log transport.Logger, out io.Writer) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = transport.NopLogger{}
	}
	if out == nil {
		out = io.Discard
	}

	opts := []showrunner.Option{
		showrunner.WithToken(cfg.Token),
		showrunner.WithLogger(log),
		showrunner.WithHTTPClient(httpclient.NewRestyClient(cfg.RequestTimeout)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, showrunner.WithBaseURL(cfg.BaseURL))
	}
	client := showrunner.New(cfg.Environment, opts...)

	log.DebugObj("client configured", "client_config", map[string]any{
		"environment":     cfg.Environment,
		"base_url":        client.BaseURL(),
		"token_set":       cfg.Token != "",
		"request_timeout": cfg.RequestTimeout.String(),
	})

	return &Runner{cfg: cfg, client: client, log: log, out: out}, nil
}

// Run executes req and renders the response.
func (r *Runner) Run(ctx context.Context, req Request) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("runner is not initialized")
	}

	rpc, ok := Lookup(req.RPC)
	if !ok {
		return fmt.Errorf("unknown rpc %q", req.RPC)
	}

	params, err := r.loadParams(rpc, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := rpc.invoke(ctx, r.client.Conferences, params)
	if err != nil {
		return fmt.Errorf("%s: %w", rpc.FullName(), err)
	}
	r.log.InfoObj("rpc succeeded", "rpc_meta", map[string]any{
		"rpc":        rpc.FullName(),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	if rpc.Void {
		return nil
	}
	return Render(r.out, resp, req.Output)
}

func (r *Runner) loadParams(rpc RPC, req Request) (any, error) {
	params := rpc.NewParams()
	if params == nil {
		if req.ParamsData != "" || req.ParamsFile != "" {
			r.log.WarnObj("rpc takes no params; ignoring input", "rpc", rpc.FullName())
		}
		return nil, nil
	}

	switch {
	case req.ParamsData != "":
		if err := DecodeParams([]byte(req.ParamsData), "", params); err != nil {
			return nil, fmt.Errorf("%s params: %w", rpc.FullName(), err)
		}
	case req.ParamsFile != "":
		if err := LoadParamsFile(req.ParamsFile, params); err != nil {
			return nil, fmt.Errorf("%s params: %w", rpc.FullName(), err)
		}
	}
	return params, nil
}
