package main

// Run gorec as an app for testing

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/dev-warrior777/go-recovery-client/client"
	"github.com/dev-warrior777/go-recovery-client/client/btc"
	"github.com/dev-warrior777/go-recovery-client/wallet"
)

var (
	coins = []string{"btc"} // add as implemented
	nets  = []string{"mainnet", "testnet", "regtest", "simnet"}
)

func makeBasicConfig(coin, net, api string) (*client.ClientConfig, error) {
	contains := func(s []string, str string) bool {
		for _, v := range s {
			if v == str {
				return true
			}
		}
		return false
	}
	if !contains(coins, coin) {
		return nil, errors.New("invalid coin")
	}
	if !contains(nets, net) {
		return nil, errors.New("invalid net")
	}
	switch coin {
	case "btc":
	default:
		return nil, errors.New("invalid coin")
	}
	cfg := client.NewDefaultConfig()
	cfg.Chain = wallet.Bitcoin
	cfg.StoreEncSeed = true
	appDir, err := client.GetConfigPath()
	if err != nil {
		return nil, err
	}
	coinNetDir := filepath.Join(appDir, coin, net)
	err = os.MkdirAll(coinNetDir, os.ModeDir|0777)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = coinNetDir
	switch net {
	case "regtest", "simnet":
		cfg.Params = &chaincfg.RegressionNetParams
		cfg.StoreEncSeed = true
		cfg.Testing = true
	case "testnet":
		cfg.Params = &chaincfg.TestNet3Params
		cfg.StoreEncSeed = true
		cfg.Testing = true
	case "mainnet":
		cfg.Params = &chaincfg.MainNetParams
		cfg.StoreEncSeed = false
		cfg.Testing = false
	}
	apiURL, err := url.Parse(api)
	if err != nil {
		return nil, err
	}
	cfg.OracleAPI = *apiURL
	return cfg, nil
}

type options struct {
	from     uint64
	mnemonic string
	rpc      bool
}

func configure() (*client.ClientConfig, *options, error) {
	coin := flag.String("coin", "btc", "coin name")
	net := flag.String("net", "regtest", "network type; testnet, mainnet, regtest")
	api := flag.String("api", "http://127.0.0.1:8080/api/v1/btc", "root url of the address usage api")
	from := flag.Uint64("from", 0, "derivation index to start the scan from")
	mnemonic := flag.String("mnemonic", "", "recreate the wallet from this mnemonic seed")
	rpc := flag.Bool("rpc", false, "serve recovery over jsonrpc instead of a one-shot scan")
	flag.Parse()
	fmt.Println("coin:", *coin)
	fmt.Println("net:", *net)
	cfg, err := makeBasicConfig(*coin, *net, *api)
	if err != nil {
		return nil, nil, err
	}
	opts := &options{
		from:     *from,
		mnemonic: *mnemonic,
		rpc:      *rpc,
	}
	return cfg, opts, nil
}

func main() {
	fmt.Println("GoRec", client.GoRecVersion)
	cfg, opts, err := configure()
	if err != nil {
		fmt.Println(err, " - exiting")
		os.Exit(1)
	}
	fmt.Println(cfg.Chain, cfg.Params.Name)

	// make basic client
	rc := btc.NewBtcRecoveryClient(cfg)

	// make the client's wallet

	if opts.mnemonic != "" {
		// recreate the wallet whose addresses are to be recovered ..
		err = rc.RecreateWallet("abc", opts.mnemonic)
	} else {
		// .. or load an existing one
		err = rc.LoadWallet("abc")
	}
	if err != nil {
		fmt.Println(err, " - exiting")
		os.Exit(1)
	}
	defer rc.Close()

	// for testing only
	if opts.rpc {
		err = rc.RPCServe()
		if err != nil {
			fmt.Println(err, " - exiting")
			os.Exit(1)
		}
		return
	}

	summary, err := rc.RecoverAddresses(opts.from)
	if err != nil {
		fmt.Println(err, " - exiting")
		os.Exit(1)
	}

	fmt.Println("used addresses found:", summary.TotalFound)
	fmt.Println("last used index:", summary.LastUsedIndex)
	for _, addr := range summary.Addresses {
		fmt.Printf("next address %d: %s\n", addr.Index, addr.Address)
	}
}
