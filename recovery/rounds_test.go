package recovery

import (
	"testing"
)

func TestConsecutiveEmptyRounds(t *testing.T) {
	tests := []struct {
		name   string
		rounds []uint64
		want   uint64
	}{
		{"no rounds", nil, 0},
		{"round zero only", []uint64{0}, 1},
		{"run down to zero", []uint64{0, 1}, 2},
		{"single high round", []uint64{5}, 1},
		{"gap below max", []uint64{3, 5}, 1},
		{"gap filled late", []uint64{3, 5, 4}, 3},
		{"high run", []uint64{10, 11, 12}, 3},
		{"low run ignored past gap", []uint64{0, 1, 2, 10}, 1},
		{"out of order arrival", []uint64{7, 5, 6}, 3},
	}

	for _, test := range tests {
		rounds := make(map[uint64]bool)
		for _, r := range test.rounds {
			rounds[r] = true
		}
		if got := consecutiveEmptyRounds(rounds); got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
		}
	}
}

// A late arriving empty round below the current maximum extends the run at
// the moment it is recorded, which is the only moment termination is
// evaluated.
func TestConsecutiveEmptyRoundsLateArrival(t *testing.T) {
	rounds := map[uint64]bool{4: true, 6: true}
	if got := consecutiveEmptyRounds(rounds); got != 1 {
		t.Fatalf("got %d, want 1 before the gap is filled", got)
	}
	rounds[5] = true
	if got := consecutiveEmptyRounds(rounds); got != 3 {
		t.Fatalf("got %d, want 3 after the gap is filled", got)
	}
}

func TestPartitionRounds(t *testing.T) {
	workCh := make(chan work, 4)
	done := make(chan struct{})

	go partition(1000, 20, workCh, done)

	var rounds []work
	for i := 0; i < 6; i++ {
		rounds = append(rounds, <-workCh)
	}
	close(done)
	// the partitioner may emit a few more buffered rounds before it
	// observes done and closes the channel
	for w := range workCh {
		rounds = append(rounds, w)
	}

	for n, w := range rounds {
		if w.round != uint64(n) {
			t.Errorf("round number %d at position %d; rounds must be contiguous from 0", w.round, n)
		}
		wantStart := 1000 + uint64(n)*20
		if w.start != wantStart {
			t.Errorf("round %d starts at %d, want %d", n, w.start, wantStart)
		}
		if w.end != wantStart+20 {
			t.Errorf("round %d ends at %d, want %d", n, w.end, wantStart+20)
		}
	}
}
