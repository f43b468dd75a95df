// Command sigdash runs the process signals dashboard server.
//
// Usage:
//
//	sigdash [-config config.yaml] [-addr :8080]
//
// Without -config the built-in defaults apply. The -addr flag overrides the
// configured listen address.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AmitVSingh/process-signals-dashboard/web"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	addr := flag.String("addr", "", "listen address override")
	flag.Parse()

	cfg := web.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = web.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	srv, err := web.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer srv.Close()

	log.Printf("dashboard listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
