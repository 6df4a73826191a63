package composer

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/polisai/passgen/pkg/domain"
)

// randIndex returns a uniform random int in [0, n) read from src.
func randIndex(src io.Reader, n int) (int, error) {
	v, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

// choice returns one uniformly chosen byte of chars.
func choice(src io.Reader, chars string) (byte, error) {
	idx, err := randIndex(src, len(chars))
	if err != nil {
		return 0, err
	}
	return chars[idx], nil
}

// shuffle permutes buf in place with Fisher-Yates, drawing every swap index
// from src.
func shuffle(src io.Reader, buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randIndex(src, i+1)
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}
