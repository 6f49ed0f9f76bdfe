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
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "sort"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

// Export the track in bedGraph format. Adjacent positions with equal values
// are merged into maximal [from, to) records, sequences are written in
// lexicographical order.
func (track Track) WriteBedGraph(w io.Writer) error {
  for _, seqname := range track.Seqnames() {
    positions := track.Data[seqname]
    sorted    := make([]int, 0, len(positions))
    for position := range positions {
      sorted = append(sorted, position)
    }
    sort.Ints(sorted)
    for i := 0; i < len(sorted); {
      j := i+1
      // extend the record while positions are adjacent and values match
      for j < len(sorted) && sorted[j] == sorted[j-1]+1 && positions[sorted[j]] == positions[sorted[i]] {
        j++
      }
      if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%f\n", seqname, sorted[i], sorted[j-1]+1, positions[sorted[i]]); err != nil {
        return err
      }
      i = j
    }
  }
  return nil
}

func (track Track) ExportBedGraph(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := track.WriteBedGraph(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

// Import data from bedGraph files. Track declaration and browser lines are
// skipped. Every record covers the positions [from, to) and is expanded to
// single nucleotide resolution.
func (track *Track) ReadBedGraph(reader io.Reader) error {
  var cur_seq map[int]float64

  if track.Data == nil {
    track.Data = make(map[string]map[int]float64)
  }
  cur_name := ""
  scanner  := bufio.NewScanner(reader)

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if fields[0] == "track" || fields[0] == "browser" {
      continue
    }
    if len(fields) != 4 {
      return fmt.Errorf("ReadBedGraph(): bedGraph file must have four columns!")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return err
    }
    t3, err := strconv.ParseFloat(fields[3], 64); if err != nil {
      return err
    }
    from := int(t1)
    to   := int(t2)
    if from < 0 || to < from {
      return fmt.Errorf("ReadBedGraph(): record has invalid range [%d, %d)!", from, to)
    }
    if name := fields[0]; name != cur_name {
      if _, ok := track.Data[name]; !ok {
        track.Data[name] = make(map[int]float64)
      }
      cur_seq  = track.Data[name]
      cur_name = name
    }
    for i := from; i < to; i++ {
      cur_seq[i] = t3
    }
  }
  return nil
}

func (track *Track) ImportBedGraph(filename string) error {
  var r io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    r = g
  } else {
    r = f
  }
  if err := track.ReadBedGraph(r); err != nil {
    return fmt.Errorf("importing bedGraph file from `%s' failed: %v", filename, err)
  }
  return nil
}
