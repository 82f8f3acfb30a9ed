package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/HerbHall/airscout/internal/config"
	"github.com/HerbHall/airscout/internal/scan"
	"github.com/HerbHall/airscout/internal/version"
	"github.com/HerbHall/airscout/internal/wifi"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	parseFile := flag.String("parse", "", "parse a captured scan output file instead of scanning")
	platform := flag.String("platform", "", "platform format for -parse (linux, darwin, windows)")
	iface := flag.String("interface", "", "wireless interface to scan (auto-detected if empty)")
	listInterfaces := flag.Bool("interfaces", false, "list wireless interfaces and their association state")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	v, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *parseFile != "" {
		if err := runParse(*parseFile, *platform, v); err != nil {
			logger.Fatal("parse failed", zap.Error(err))
		}
		return
	}

	cfg, err := config.ScanConfig(v)
	if err != nil {
		logger.Fatal("invalid scan configuration", zap.Error(err))
	}
	if *iface != "" {
		cfg.Interface = *iface
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if *listInterfaces {
		if err := runInterfaces(ctx, logger); err != nil {
			logger.Fatal("interface listing failed", zap.Error(err))
		}
		return
	}

	scanner := scan.NewScanner(logger, cfg)
	if !scanner.Available() {
		logger.Fatal("no usable wifi scanning backend on this system")
	}

	networks, err := scanner.Scan(ctx)
	if err != nil {
		logger.Fatal("scan failed", zap.Error(err))
	}
	printNetworks(networks)
}

// runParse runs a platform parser over a captured scan output file.
func runParse(path, platform string, v *viper.Viper) error {
	if platform == "" {
		return fmt.Errorf("-parse requires -platform (linux, darwin or windows)")
	}
	parse, err := wifi.ParserFor(wifi.Platform(platform))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var opts []wifi.Option
	if v.GetBool("scan.allow_empty") {
		opts = append(opts, wifi.AllowEmpty())
	}
	networks, err := parse(string(data), opts...)
	if err != nil {
		return err
	}
	printNetworks(networks)
	return nil
}

func runInterfaces(ctx context.Context, logger *zap.Logger) error {
	lister, err := scan.NewInterfaceLister(logger)
	if err != nil {
		return err
	}
	interfaces, err := lister.Interfaces(ctx)
	if err != nil {
		return err
	}

	fmt.Println("== List of interfaces")
	fmt.Printf("%-17s %-32s %-8s %-8s %-16s %s\n", "MAC", "SSID", "CHANNEL", "SIGNAL", "SECURITY", "STATE")
	for _, ifc := range interfaces {
		fmt.Printf("%-17s %-32s %-8s %-8s %-16s %s\n",
			ifc.MAC, ifc.SSID, ifc.Channel, ifc.SignalLevel, ifc.Security, ifc.State)
	}
	return nil
}

func printNetworks(networks []wifi.WifiInfo) {
	fmt.Println("== List of networks")
	fmt.Printf("%-17s %-32s %-8s %-8s %s\n", "MAC", "SSID", "CHANNEL", "SIGNAL", "SECURITY")
	for _, n := range networks {
		fmt.Printf("%-17s %-32s %-8s %-8s %s\n",
			n.MAC, n.SSID, n.Channel, n.SignalLevel, n.Security)
	}
}
