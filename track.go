/* Copyright (C) 2023 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package goclip

/* -------------------------------------------------------------------------- */

import "path/filepath"
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

// Track is a sparse genomic signal track that stores one value per position
// at single nucleotide resolution. Positions without an entry are not part
// of the track, which is not the same as positions with value zero. Crosslink
// tracks from iCLIP experiments cover only a small fraction of the genome,
// hence values are held in nested maps instead of one dense slice per
// sequence. The first position in a sequence is numbered 0.
type Track struct {
  Name string
  Data map[string]map[int]float64
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewTrack(name string) Track {
  return Track{name, make(map[string]map[int]float64)}
}

func (track *Track) Clone() Track {
  result := NewTrack(track.Name)
  for seqname, positions := range track.Data {
    sequence := make(map[int]float64, len(positions))
    for position, value := range positions {
      sequence[position] = value
    }
    result.Data[seqname] = sequence
  }
  return result
}

/* access methods
 * -------------------------------------------------------------------------- */

// At returns the value stored at the given position. The second return value
// states if the position is part of the track.
func (track Track) At(seqname string, position int) (float64, bool) {
  if positions, ok := track.Data[seqname]; ok {
    value, ok := positions[position]
    return value, ok
  }
  return 0.0, false
}

func (track *Track) Set(seqname string, position int, value float64) {
  positions, ok := track.Data[seqname]
  if !ok {
    positions = make(map[int]float64)
    track.Data[seqname] = positions
  }
  positions[position] = value
}

func (track *Track) Add(seqname string, position int, value float64) {
  positions, ok := track.Data[seqname]
  if !ok {
    positions = make(map[int]float64)
    track.Data[seqname] = positions
  }
  positions[position] += value
}

// Number of positions that are part of the track.
func (track Track) Positions() int {
  n := 0
  for _, positions := range track.Data {
    n += len(positions)
  }
  return n
}

func (track Track) Seqnames() []string {
  seqnames := make([]string, 0, len(track.Data))
  for seqname := range track.Data {
    seqnames = append(seqnames, seqname)
  }
  sort.Strings(seqnames)
  return seqnames
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import a track from a text file. The format is selected based on the file
// name: files ending in .wig or .wiggle are parsed as wiggle files, all
// other files as bedGraph. A .gz suffix is stripped before the format is
// determined, compressed files are decompressed on the fly.
func (track *Track) Import(filename string) error {
  basename := strings.TrimSuffix(filename, ".gz")
  switch filepath.Ext(basename) {
  case ".wig", ".wiggle":
    return track.ImportWiggle(filename)
  default:
    return track.ImportBedGraph(filename)
  }
}
