// Package client defines the recovery client interface and its
// configuration.
package client

import (
	"github.com/dev-warrior777/go-recovery-client/recovery"
	"github.com/dev-warrior777/go-recovery-client/wallet"
)

const GoRecVersion = "0.1.0"

type RecoveryClient interface {
	CreateWallet(pw string) error
	RecreateWallet(pw, mnemonic string) error
	LoadWallet(pw string) error
	//
	RecoverAddresses(startIndex uint64) (*recovery.Summary, error)
	//
	GetConfig() *ClientConfig
	GetWallet() wallet.RecoveryWallet
	//
	RPCServe() error
	//
	Close()
}
