/*
* ssl-scan, a prober for the SSLv2, SSLv3 and TLSv1 cipher suites a server accepts.
*
* Copyright (c) The ssl-scan Authors, 2026.
*
* This work is licensed under the terms of the MIT license. For a copy, see the LICENSE file in the top-level
* directory or visit <https://opensource.org/licenses/MIT>.
*
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coleton/ssl-scan/ciphers"
	"github.com/coleton/ssl-scan/commands"
	"github.com/coleton/ssl-scan/report"
	"github.com/coleton/ssl-scan/ssl"
	"github.com/coleton/ssl-scan/transport"
	"github.com/coleton/ssl-scan/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

const (
	formatText = "text"
	formatJson = "json"
	formatYaml = "yaml"
)

// app carries what the command writes to and scans with. Zero values select stdout's defaults, TCP, the system
// resolver and a zap logger.
type app struct {
	stdout    io.Writer
	logger    utils.Logger
	transport transport.Transport
	resolver  commands.Resolver
}

func newRootCommand(a *app) *cobra.Command {
	v := viper.New()
	defaults := commands.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "ssl-scan [flags] host[:port]",
		Short:        "Probe which SSLv2, SSLv3 and TLSv1 ciphers a server accepts",
		Long:         "Probes every cipher of SSLv2, SSLv3 and TLSv1 with a dedicated handshake, classifies accepted\nciphers against a strong cipher policy and shows the server certificate.",
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), v, args)
		},
	}
	cmd.SetVersionTemplate("ssl-scan version {{.Version}}\n")
	cmd.SetOut(a.stdout)

	flags := cmd.Flags()
	flags.StringP("targets", "t", "", "A file containing a list of hosts to check with syntax ( host | host:port )")
	flags.Bool("no-failed", false, "List only accepted and rejected ciphers")
	flags.Bool("ssl2", false, "Only check SSLv2 ciphers")
	flags.Bool("ssl3", false, "Only check SSLv3 ciphers")
	flags.Bool("tls1", false, "Only check TLSv1 ciphers")
	flags.BoolP("cert", "c", false, "Only get the server certificate")
	flags.BoolP("debug", "d", false, "Log every probe and SSL error to stderr")
	flags.Int("workers", defaults.Workers, "Simultaneous connections per host")
	flags.Duration("timeout", defaults.ProbeTimeout, "Timeout of each network operation")
	flags.Duration("scan-timeout", defaults.ScanTimeout, "Time budget of a host scan")
	flags.Float64("rate", defaults.RateLimit, "Maximum probes per second, 0 for no limit")
	flags.String("format", formatText, "Output format (text, json, yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("config", "", "Config file (default is $HOME/.ssl-scan.yaml)")

	return cmd
}

// loadConfig merges flags, SSLSCAN_ environment variables and the config file, in that order of precedence
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix("SSLSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file: %s", err)
		}
		return nil
	}

	v.AddConfigPath("$HOME")
	v.SetConfigName(".ssl-scan")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %s", err)
		}
	}
	return nil
}

func (a *app) run(ctx context.Context, v *viper.Viper, args []string) error {

	format := strings.ToLower(v.GetString("format"))
	if format != formatText && format != formatJson && format != formatYaml {
		return fmt.Errorf("unknown output format '%s'", format)
	}

	config := commands.Config{
		Workers:      v.GetInt("workers"),
		ProbeTimeout: v.GetDuration("timeout"),
		ScanTimeout:  v.GetDuration("scan-timeout"),
		RateLimit:    v.GetFloat64("rate"),
	}
	if err := config.Validate(); err != nil {
		return err
	}

	options := ssl.Options{
		OnlyCert: v.GetBool("cert"),
		NoFailed: v.GetBool("no-failed"),
	}
	for flag, p := range map[string]ciphers.Protocol{"ssl2": ciphers.Sslv2, "ssl3": ciphers.Sslv3, "tls1": ciphers.Tlsv1} {
		if v.GetBool(flag) {
			options.Versions = append(options.Versions, p)
		}
	}

	// Collect targets, either the list file or the single argument
	listMode := v.GetString("targets") != ""
	var targets []string
	if listMode {
		file, errOpen := os.Open(v.GetString("targets"))
		if errOpen != nil {
			return fmt.Errorf("could not open target list: %s", errOpen)
		}
		var errRead error
		targets, errRead = commands.ReadTargets(file)
		_ = file.Close()
		if errRead != nil {
			return fmt.Errorf("could not read target list: %s", errRead)
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("host not given")
		}
		targets = args
	}

	logger := a.logger
	if logger == nil {
		zapLogger, errLogger := utils.NewZapLogger(v.GetBool("debug"))
		if errLogger != nil {
			return errLogger
		}
		defer zapLogger.Sync()
		logger = zapLogger
	}

	stdout := a.stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	colored := format == formatText && !v.GetBool("no-color") && !color.NoColor

	var docs []*report.Document
	var errScan error
	for _, target := range targets {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		host, errHost := commands.NewHost(logger, target, options, config, a.transport, a.resolver)
		if errHost != nil {
			if !listMode {
				return errHost
			}
			if _, errWrite := fmt.Fprintf(stdout, "Error: %s\n", errHost); errWrite != nil {
				return errWrite
			}
			continue
		}

		errExecute := host.Execute(ctx)
		if errExecute != nil {
			logger.Debugf("Scan of %s did not complete: %s", host, errExecute)
		}

		switch format {
		case formatText:
			if errWrite := report.WriteText(stdout, host.String(), host.Results(), host.Errors(), colored); errWrite != nil {
				return errWrite
			}
		default:
			docs = append(docs, report.NewDocument(host.String(), host.Status(), host.Results(), host.Errors()))
		}

		if errExecute != nil && !listMode {
			errScan = errExecute
		}
	}

	switch format {
	case formatJson:
		if errWrite := report.WriteJSON(stdout, docs); errWrite != nil {
			return errWrite
		}
	case formatYaml:
		if errWrite := report.WriteYAML(stdout, docs); errWrite != nil {
			return errWrite
		}
	}
	return errScan
}
