package statistics

// Window measures the win rate over consecutive fixed-size blocks of hands.
// Each full block appends one percentage sample to History and starts over.
type Window struct {
	Size    int
	Wins    int
	Games   int
	History []float64
}

// NewWindow returns a window sampling every size hands.
func NewWindow(size int) *Window {
	return &Window{Size: size}
}

// Record counts one resolved hand. It returns the new sample and true when
// the hand completed a block.
func (w *Window) Record(win bool) (float64, bool) {
	w.Games++
	if win {
		w.Wins++
	}
	if w.Size <= 0 || w.Games < w.Size {
		return 0, false
	}
	sample := float64(w.Wins) / float64(w.Size) * 100
	w.History = append(w.History, sample)
	w.Wins, w.Games = 0, 0
	return sample, true
}

// Last returns the most recent sample.
func (w *Window) Last() (float64, bool) {
	if len(w.History) == 0 {
		return 0, false
	}
	return w.History[len(w.History)-1], true
}

// Reset clears the partial block and the history.
func (w *Window) Reset() {
	w.Wins, w.Games = 0, 0
	w.History = nil
}
