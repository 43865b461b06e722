package audio

import (
	"math/cmplx"
	"sync"

	"github.com/gopxl/beep"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// SampleRate is the analysis rate in Hz
	SampleRate = 44100

	// blockSize is the FFT window; one block is pulled per video frame
	blockSize = 1024

	// levelSmoothing is the exponential decay applied to spectrum bins so
	// band levels don't flicker at frame rate
	levelSmoothing = 0.7
)

// Analyzer pulls blocks from a beep streamer and maintains a smoothed
// magnitude spectrum. It satisfies the modulator package's LevelSource,
// so band energy can drive any patch parameter through the mod matrix.
type Analyzer struct {
	mu       sync.Mutex
	source   beep.Streamer
	fft      *fourier.FFT
	block    [][2]float64
	mono     []float64
	spectrum []float64
}

func NewAnalyzer(source beep.Streamer) *Analyzer {
	return &Analyzer{
		source:   source,
		fft:      fourier.NewFFT(blockSize),
		block:    make([][2]float64, blockSize),
		mono:     make([]float64, blockSize),
		spectrum: make([]float64, blockSize/2+1),
	}
}

// Pump streams one block from the source and folds its spectrum into the
// smoothed bins. Call once per frame; a drained source leaves the
// spectrum decaying toward silence.
func (a *Analyzer) Pump() {
	a.mu.Lock()
	defer a.mu.Unlock()

	n, _ := a.source.Stream(a.block)
	for i := 0; i < n; i++ {
		a.mono[i] = (a.block[i][0] + a.block[i][1]) * 0.5
	}
	for i := n; i < blockSize; i++ {
		a.mono[i] = 0
	}

	coeffs := a.fft.Coefficients(nil, a.mono)
	norm := 2.0 / float64(blockSize)
	for i := range a.spectrum {
		mag := cmplx.Abs(coeffs[i]) * norm
		a.spectrum[i] = levelSmoothing*a.spectrum[i] + (1-levelSmoothing)*mag
	}
}

// Level returns the mean smoothed magnitude over [lowHz, highHz], clamped
// to [0, 1]
func (a *Analyzer) Level(lowHz, highHz float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	if highHz <= lowHz {
		return 0
	}

	var sum float64
	var count int
	for i := range a.spectrum {
		hz := a.fft.Freq(i) * SampleRate
		if hz < lowHz || hz > highHz {
			continue
		}
		sum += a.spectrum[i]
		count++
	}
	if count == 0 {
		return 0
	}

	level := sum / float64(count)
	if level > 1 {
		level = 1
	}
	return level
}
