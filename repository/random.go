package repository

import (
	"math/rand"

	"github.com/YutoSekiguchi/Lyricium/model"
)

// shuffleSongs permutes songs in place, freshly per call. Filtered lookups
// return their matches in random order rather than relying on the storage
// engine's RAND().
func shuffleSongs(songs []*model.Song) {
	rand.Shuffle(len(songs), func(i, j int) {
		songs[i], songs[j] = songs[j], songs[i]
	})
}

// reservoir picks one element uniformly from a stream of unknown length.
// Call observe for every element; pick returns the survivor.
type reservoir struct {
	picked *model.Song
	seen   int
}

func (r *reservoir) observe(song *model.Song) {
	r.seen++
	if rand.Intn(r.seen) == 0 {
		r.picked = song
	}
}

func (r *reservoir) pick() *model.Song {
	return r.picked
}
