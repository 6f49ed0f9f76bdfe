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

import "bufio"
import "bytes"
import "fmt"
import "io"

/* -------------------------------------------------------------------------- */

// Regions is a columnar set of genomic intervals carrying the fixed
// annotation columns of a six column bed file. All columns have the same
// length at all times. Records keep the order in which they were added,
// duplicates are not removed.
type Regions struct {
  Seqnames []string
  Ranges   []Range
  Names    []string
  Scores   []float64
  Strand   []byte
}

/* constructors
 * -------------------------------------------------------------------------- */

// NewRegions creates a region set from columnar data. The arguments from, to
// are interpreted as half-open intervals [from, to). Empty names, scores, or
// strand slices are replaced by default columns ('.', 0, and '*').
func NewRegions(seqnames []string, from, to []int, names []string, scores []float64, strand []byte) Regions {
  n := len(seqnames)
  if len(from) != n || len(to) != n     ||
    (len(names ) != 0 && len(names ) != n) ||
    (len(scores) != 0 && len(scores) != n) ||
    (len(strand) != 0 && len(strand) != n) {
    panic("NewRegions(): invalid arguments!")
  }
  if len(names) == 0 {
    names = make([]string, n)
    for i := 0; i < n; i++ {
      names[i] = "."
    }
  }
  if len(scores) == 0 {
    scores = make([]float64, n)
  }
  if len(strand) == 0 {
    strand = make([]byte, n)
    for i := 0; i < n; i++ {
      strand[i] = '*'
    }
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    // create range
    ranges[i] = NewRange(from[i], to[i])
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' && strand[i] != '*' {
      panic("NewRegions(): Invalid strand!")
    }
  }
  return Regions{seqnames, ranges, names, scores, strand}
}

func NewEmptyRegions(n int) Regions {
  seqnames := make([]string, n)
  ranges   := make([]Range, n)
  names    := make([]string, n)
  scores   := make([]float64, n)
  strand   := make([]byte, n)
  for i := 0; i < n; i++ {
    names [i] = "."
    strand[i] = '*'
  }
  return Regions{seqnames, ranges, names, scores, strand}
}

func (r *Regions) Clone() Regions {
  result := Regions{}
  n := r.Length()
  result.Seqnames = make([]string, n)
  result.Ranges   = make([]Range, n)
  result.Names    = make([]string, n)
  result.Scores   = make([]float64, n)
  result.Strand   = make([]byte, n)
  copy(result.Seqnames, r.Seqnames)
  copy(result.Ranges,   r.Ranges)
  copy(result.Names,    r.Names)
  copy(result.Scores,   r.Scores)
  copy(result.Strand,   r.Strand)
  return result
}

/* access methods
 * -------------------------------------------------------------------------- */

func (r *Regions) Length() int {
  return len(r.Ranges)
}

func (r *Regions) Row(i int) RegionsRow {
  return RegionsRow{
    r.Seqnames[i],
    r.Ranges  [i],
    r.Names   [i],
    r.Scores  [i],
    r.Strand  [i] }
}

func (r1 *Regions) Append(r2 Regions) Regions {
  result := Regions{}

  result.Seqnames = append(r1.Seqnames, r2.Seqnames...)
  result.Ranges   = append(r1.Ranges,   r2.Ranges...)
  result.Names    = append(r1.Names,    r2.Names...)
  result.Scores   = append(r1.Scores,   r2.Scores...)
  result.Strand   = append(r1.Strand,   r2.Strand...)

  return result
}

func (r *Regions) Subset(indices []int) Regions {
  n := len(indices)
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)
  names    := make([]string, n)
  scores   := make([]float64, n)
  strand   := make([]byte, n)

  for i := 0; i < n; i++ {
    seqnames[i] = r.Seqnames[indices[i]]
    from    [i] = r.Ranges  [indices[i]].From
    to      [i] = r.Ranges  [indices[i]].To
    names   [i] = r.Names   [indices[i]]
    scores  [i] = r.Scores  [indices[i]]
    strand  [i] = r.Strand  [indices[i]]
  }
  return NewRegions(seqnames, from, to, names, scores, strand)
}

func (r *Regions) Slice(ifrom, ito int) Regions {
  n := ito-ifrom
  seqnames := make([]string, n)
  from     := make([]int, n)
  to       := make([]int, n)
  names    := make([]string, n)
  scores   := make([]float64, n)
  strand   := make([]byte, n)

  for i := ifrom; i < ito; i++ {
    seqnames[i-ifrom] = r.Seqnames[i]
    from    [i-ifrom] = r.Ranges  [i].From
    to      [i-ifrom] = r.Ranges  [i].To
    names   [i-ifrom] = r.Names   [i]
    scores  [i-ifrom] = r.Scores  [i]
    strand  [i-ifrom] = r.Strand  [i]
  }
  return NewRegions(seqnames, from, to, names, scores, strand)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (regions Regions) PrettyPrint(n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) {
    width, _ := fmt.Fprintf(io.Discard, format, args...)
    if width > widths[j] {
      widths[j] = width
    }
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) {
    updateMaxWidth("%d", widths, 0, i+1)
    updateMaxWidth("%s", widths, 1, regions.Seqnames[i])
    updateMaxWidth("%d", widths, 2, regions.Ranges[i].From)
    updateMaxWidth("%d", widths, 3, regions.Ranges[i].To)
    updateMaxWidth("%c", widths, 4, regions.Strand[i])
    updateMaxWidth("%s", widths, 5, regions.Names[i])
    updateMaxWidth("%f", widths, 6, regions.Scores[i])
  }
  printHeader := func(writer io.Writer, format string) {
    fmt.Fprintf(writer, format,
      "", "seqnames", "ranges", "strand", "name", "score")
    fmt.Fprintf(writer, "\n")
  }
  printRow := func(writer io.Writer, format string, i int) {
    if i != 0 {
      fmt.Fprintf(writer, "\n")
    }
    fmt.Fprintf(writer, format,
      i+1,
      regions.Seqnames[i],
      regions.Ranges[i].From,
      regions.Ranges[i].To,
      regions.Strand[i],
      regions.Names[i],
      regions.Scores[i])
  }
  applyRows := func(f1 func(i int), f2 func()) {
    if regions.Length() <= n+1 {
      // apply to all entries
      for i := 0; i < regions.Length(); i++ { f1(i) }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ { f1(i) }
      // between first and last n/2 rows
      f2()
      // apply to last n/2 rows
      for i := regions.Length() - n/2; i < regions.Length(); i++ { f1(i) }
    }
  }
  // maximum column widths
  widths := []int{1, 8, 1, 1, 6, 4, 5}
  // determine column widths
  applyRows(func(i int) { updateMaxWidths(i, widths) }, func() {})
  // generate format strings
  formatRow    := fmt.Sprintf("%%%dd %%%ds [%%%dd, %%%dd] %%%dc %%%ds %%%df",
    widths[0], widths[1], widths[2], widths[3], widths[4], widths[5], widths[6])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds %%%ds %%%ds",
    widths[0], widths[1], widths[2]+widths[3]+4, widths[4], widths[5], widths[6])
  // print header
  printHeader(writer, formatHeader)
  // print rows
  applyRows(
    func(i int) {
      printRow(writer, formatRow, i)
    },
    func() {
      fmt.Fprintf(writer, "\n")
      fmt.Fprintf(writer, formatHeader, "", "...", "...", "", "", "")
    })
  writer.Flush()

  return buffer.String()
}

func (regions Regions) String() string {
  return regions.PrettyPrint(10)
}

/* -------------------------------------------------------------------------- */

type RegionsRow struct {
  Seqname string
  Range   Range
  Name    string
  Score   float64
  Strand  byte
}
