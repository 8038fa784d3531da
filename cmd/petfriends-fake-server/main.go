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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/petfriends/pkg/constants"
	"github.com/unikorn-cloud/petfriends/pkg/fake"
	"github.com/unikorn-cloud/petfriends/pkg/logging"

	cr "sigs.k8s.io/controller-runtime"
)

func main() {
	var (
		logOptions    logging.Options
		listenAddress string
		account       fake.Account
	)

	logOptions.AddFlags(pflag.CommandLine)

	pflag.StringVar(&listenAddress, "listen-address", constants.DefaultListenAddress, "Address to listen on.")
	pflag.StringVar(&account.Email, "email", "", "Email of the account to register.")
	pflag.StringVar(&account.Password, "password", "", "Password of the account to register.")

	pflag.Parse()

	logger := logOptions.Setup().WithName("init")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	var options []fake.Option

	options = append(options, fake.WithLogger(logger.WithName("fake")))

	if account.Email != "" {
		options = append(options, fake.WithAccount(account))
	}

	server := &http.Server{
		Addr:              listenAddress,
		Handler:           fake.New(options...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx := cr.SetupSignalHandler()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	logger.Info("listening", "address", listenAddress)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println(err)
		os.Exit(1)
	}
}
