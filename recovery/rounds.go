package recovery

// work describes one scan round: derive and look up the addresses with
// indexes in [start, end).
type work struct {
	round uint64
	start uint64
	end   uint64
}

// partition feeds fixed width rounds to the work channel until the done
// signal lands. Round numbers are contiguous from 0 regardless of
// startIndex. The work channel is buffered to the worker count so at most
// that many rounds are queued ahead of the consumers when the scan stops; a
// round already handed to a worker is never cancelled.
func partition(startIndex, addressCount uint64, workCh chan<- work, done <-chan struct{}) {
	var round uint64
	for index := startIndex; ; index += addressCount {
		select {
		case <-done:
			close(workCh)
			return
		case workCh <- work{
			round: round,
			start: index,
			end:   index + addressCount,
		}:
		}
		round++
	}
}

// consecutiveEmptyRounds returns the length of the unbroken run of round
// numbers, ending at the highest round recorded so far, that are all present
// in rounds. Rounds complete in any order, so a late arriving low round can
// extend the run and a gap below the maximum caps it.
func consecutiveEmptyRounds(rounds map[uint64]bool) uint64 {
	var lastRound uint64
	for round := range rounds {
		if lastRound < round {
			lastRound = round
		}
	}

	i := lastRound
	for rounds[i] {
		i--
	}

	// i wraps below zero when every round down to 0 is recorded; the
	// subtraction still yields the run length modulo 2^64.
	return lastRound - i
}
