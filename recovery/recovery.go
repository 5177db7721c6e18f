// Package recovery implements the concurrent scan that finds every address a
// seed wallet has ever used.
//
// A partitioner splits the unbounded index space into fixed rounds, a pool
// of workers derives each round's addresses and asks the usage oracle about
// them in one batch, and a single consuming loop owns all of the scan state:
// it records which rounds came back empty, stops the scan once enough
// consecutive rounds past the last known index are empty, and folds every
// round result into the final last used index.
package recovery

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dev-warrior777/go-recovery-client/wallet"
)

// DefaultWorkers is the scan worker pool size used when ScanConfig.Workers
// is not set.
const DefaultWorkers = 8

var ErrZeroAddressCount = errors.New("address count must be non-zero")

// AddressDeriver derives one address per index, deterministically: the same
// index always yields the same address.
type AddressDeriver interface {
	GetAddress(index uint64) (wallet.RecoveredAddress, error)
}

// UsageOracle reports which of a batch of addresses have ever appeared in
// the ledger. A lookup failure is fatal to the scan; there are no retries.
type UsageOracle interface {
	FindUsedAddresses(addresses []string) ([]wallet.AddressUsage, error)
}

type ScanConfig struct {
	// First derivation index to scan from.
	StartIndex uint64

	// Number of addresses derived and looked up per round.
	AddressCount uint64

	// Number of consecutive empty rounds, by round number, needed before
	// the scan stops.
	MaxEmptyRounds uint64

	// Rounds that end below this index never count as empty. A previous
	// scan already proved use below it, so an empty low round while
	// catching up must not stop the scan early.
	LastKnownIndex uint64

	// Concurrent scan workers. Defaults to DefaultWorkers.
	Workers int
}

// Progress is reported once per completed round, in arrival order, which is
// not round order. Index is the running last used index and is only
// eventually monotonic across notifications.
type Progress struct {
	Found     int
	Addresses []wallet.RecoveredAddress
	Index     uint64
}

type ProgressFunc func(Progress)

// Summary is the terminal result of a successful scan. Addresses holds only
// the speculative next address synthesized after a final "sent" usage, never
// the full used address history, which was already reported through
// progress notifications.
type Summary struct {
	Addresses     []wallet.RecoveredAddress
	LastUsedIndex uint64
	TotalFound    uint64
}

type roundResult struct {
	round, start, end uint64

	lastUsedIndex uint64
	lastUsedType  string
	addresses     []wallet.RecoveredAddress

	err error
}

func scanWorker(deriver AddressDeriver, oracle UsageOracle, workCh <-chan work, results chan<- roundResult) {
	for r := range workCh {
		var addresses []string
		recovered := roundResult{
			round: r.round,
			start: r.start,
			end:   r.end,
		}

		addressMap := make(map[string]wallet.RecoveredAddress)

		for i := r.start; i < r.end; i++ {
			addr, err := deriver.GetAddress(i)
			if err != nil {
				// an unusable child key; skip the index
				continue
			}
			addressMap[addr.Address] = addr
			addresses = append(addresses, addr.Address)
		}

		used, err := oracle.FindUsedAddresses(addresses)
		if err != nil {
			results <- roundResult{
				err: fmt.Errorf("unable to get used addresses: %w", err),
			}
			return
		}

		for _, usage := range used {
			addr, exists := addressMap[usage.Address]
			if !exists {
				continue
			}

			addr.UsageType = usage.UsageType
			addr.Txid = usage.Txid
			recovered.addresses = append(recovered.addresses, addr)

			if recovered.lastUsedIndex < addr.Index {
				recovered.lastUsedIndex = addr.Index
				recovered.lastUsedType = addr.UsageType
			}
		}

		results <- recovered
	}
}

// RecoverAddresses scans the wallet's address space addressCount addresses
// at a time until MaxEmptyRounds consecutive rounds at or past
// LastKnownIndex report no used address, or until a lookup fails. Exactly
// one of the summary and the error is non-nil. onProgress may be nil; when
// set it is called from the consuming loop once per completed round.
func RecoverAddresses(cfg *ScanConfig, deriver AddressDeriver, oracle UsageOracle, onProgress ProgressFunc) (*Summary, error) {
	if cfg.AddressCount == 0 {
		return nil, ErrZeroAddressCount
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	workCh := make(chan work, workers)
	results := make(chan roundResult)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			scanWorker(deriver, oracle, workCh, results)
			wg.Done()
		}()
	}

	go func() {
		// wait for all workers to drain the work channel, then close the
		// result stream
		wg.Wait()
		close(results)
	}()

	go partition(cfg.StartIndex, cfg.AddressCount, workCh, done)

	// signal the partitioner to stop, at most once
	stop := func() {
		select {
		case <-done:
		default:
			close(done)
		}
	}

	var scanErr error
	var lastIndex, usedTotal uint64
	var lastUsageType string
	emptyRounds := make(map[uint64]bool)

	for res := range results {
		if res.err != nil {
			if scanErr == nil {
				scanErr = res.err
			}
			stop()
			continue
		}
		if scanErr != nil {
			// draining after a fatal error; results no longer matter
			continue
		}

		if len(res.addresses) == 0 && res.end >= cfg.LastKnownIndex {
			emptyRounds[res.round] = true

			if consecutive := consecutiveEmptyRounds(emptyRounds); consecutive >= cfg.MaxEmptyRounds {
				stop()
			}
		}

		usedTotal += uint64(len(res.addresses))

		if res.lastUsedIndex > lastIndex {
			lastIndex = res.lastUsedIndex
			lastUsageType = res.lastUsedType
		}

		if onProgress != nil {
			onProgress(Progress{
				Found:     len(res.addresses),
				Addresses: res.addresses,
				Index:     lastIndex,
			})
		}
	}

	if scanErr != nil {
		return nil, scanErr
	}

	additional := []wallet.RecoveredAddress{}

	if lastUsageType == wallet.UsageSent {
		// a spend implies the next address should also be considered
		// in use
		lastIndex++

		addr, err := deriver.GetAddress(lastIndex)
		if err != nil {
			return nil, err
		}
		additional = append(additional, addr)
	}

	return &Summary{
		Addresses:     additional,
		LastUsedIndex: lastIndex,
		TotalFound:    usedTotal,
	}, nil
}
