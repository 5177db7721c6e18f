package btc

import (
	"github.com/go-zoox/logger"

	"github.com/dev-warrior777/go-recovery-client/recovery"
)

// Here is the client interface between the wallet & the usage oracle for
// the recovery scan.

// RecoverAddresses scans forward from startIndex for every address the
// wallet's seed has ever used and records each one in the datastore as it
// is found. On success the datastore also remembers the last used index so
// a later scan can resume without re-proving the low index space.
func (rc *BtcRecoveryClient) RecoverAddresses(startIndex uint64) (*recovery.Summary, error) {
	w := rc.wallet
	if w == nil {
		return nil, ErrNoWallet
	}
	if rc.oracle == nil {
		return nil, ErrNoOracle
	}
	cfg := rc.clientConfig

	lastKnownIndex := cfg.LastKnownIndex
	if lastKnownIndex == 0 {
		// a previous scan may have stored one
		idx, err := cfg.DB.Cfg().GetLastKnownIndex()
		if err != nil {
			return nil, err
		}
		lastKnownIndex = idx
	}

	scanCfg := &recovery.ScanConfig{
		StartIndex:     startIndex,
		AddressCount:   cfg.AddressCount,
		MaxEmptyRounds: cfg.MaxEmptyRounds,
		LastKnownIndex: lastKnownIndex,
		Workers:        cfg.Workers,
	}

	addrs := cfg.DB.Addrs()

	summary, err := recovery.RecoverAddresses(scanCfg, w, rc.oracle, func(p recovery.Progress) {
		if p.Found > 0 {
			logger.Info("found %d used address(es), last used index %d", p.Found, p.Index)
		}
		for i := range p.Addresses {
			if dbErr := addrs.Put(&p.Addresses[i]); dbErr != nil {
				logger.Warn("cannot store %s: %v", p.Addresses[i].Address, dbErr)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	for i := range summary.Addresses {
		if dbErr := addrs.Put(&summary.Addresses[i]); dbErr != nil {
			logger.Warn("cannot store %s: %v", summary.Addresses[i].Address, dbErr)
		}
	}

	if err := cfg.DB.Cfg().PutLastKnownIndex(summary.LastUsedIndex); err != nil {
		return nil, err
	}

	logger.Info("recovery complete: %d used address(es), last used index %d",
		summary.TotalFound, summary.LastUsedIndex)

	return summary, nil
}
