/*
Copyright 2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logging configures the process wide logr logger, backed by zap.
package logging

import (
	"flag"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options are the logging flags shared by all commands.
type Options struct {
	zap zap.Options

	// Verbosity enables logr V-levels up to and including this value.
	Verbosity int
}

// AddFlags registers the zap flags alongside our own.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	goflags := flag.NewFlagSet("logging", flag.ContinueOnError)

	o.zap.BindFlags(goflags)

	f.AddGoFlagSet(goflags)
	f.IntVar(&o.Verbosity, "verbosity", 0, "Log verbosity, 1 logs every request.")
}

// Setup installs the global logger and returns it.
func (o *Options) Setup() logr.Logger {
	options := []zap.Opts{
		zap.UseFlagOptions(&o.zap),
	}

	if o.Verbosity > 0 {
		options = append(options, zap.Level(zapcore.Level(-o.Verbosity)))
	}

	logger := zap.New(options...)

	log.SetLogger(logger)

	return logger
}

// ForTest returns a development logger writing to w with V(1) enabled,
// typically GinkgoWriter or a testing buffer.
func ForTest(w io.Writer) logr.Logger {
	return zap.New(zap.WriteTo(w), zap.UseDevMode(true), zap.Level(zapcore.Level(-1)))
}
