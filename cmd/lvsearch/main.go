// Command lvsearch runs the search scenarios of a TOML file and prints the
// path found for each one.
//
//	lvsearch -config scenarios.toml -parallel 4 -metrics-addr :9090
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
