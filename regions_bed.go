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
import "compress/gzip"
import "io"
import "os"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

// Export regions as bed file with six columns. Regions without strand
// information are exported with the bed strand placeholder '.'.
func (regions Regions) WriteBed6(w io.Writer) error {
  for i := 0; i < regions.Length(); i++ {
    if _, err := fmt.Fprintf(w,   "%s", regions.Seqnames[i]); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%d", regions.Ranges[i].From); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%d", regions.Ranges[i].To); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%s", regions.Names[i]); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%f", regions.Scores[i]); err != nil {
      return err
    }
    if regions.Strand[i] != '*' {
      if _, err := fmt.Fprintf(w, "\t%c", regions.Strand[i]); err != nil {
        return err
      }
    } else {
      if _, err := fmt.Fprintf(w, "\t%s", "."); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (regions Regions) ExportBed6(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := regions.WriteBed6(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

// Read regions from a bed file with six or more columns. Records are imported
// in file order, columns after the sixth are dropped. The bed strand
// placeholder '.' is replaced by '*'.
func (r *Regions) ReadBed6(reader io.Reader) error {
  scanner := bufio.NewScanner(reader)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  names    := []string{}
  scores   := []float64{}
  strand   := []byte{}

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 6 {
      return fmt.Errorf("ReadBed6(): Bed file must have at least six columns!")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return err
    }
    t3, err := strconv.ParseFloat(fields[4], 64); if err != nil {
      return err
    }
    if t1 > t2 {
      return fmt.Errorf("ReadBed6(): region `%s' has negative length!", fields[3])
    }
    if k := fields[5][0]; k != '+' && k != '-' && k != '.' && k != '*' {
      return fmt.Errorf("ReadBed6(): region `%s' has invalid strand `%c'!", fields[3], k)
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    names    = append(names,    fields[3])
    scores   = append(scores,   t3)
    if fields[5][0] == '.' {
      strand   = append(strand, '*')
    } else {
      strand   = append(strand, fields[5][0])
    }
  }
  *r = NewRegions(seqnames, from, to, names, scores, strand)

  return nil
}

func (r *Regions) ImportBed6(filename string) error {
  var reader io.Reader
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
    reader = g
  } else {
    reader = f
  }
  if err := r.ReadBed6(reader); err != nil {
    return fmt.Errorf("importing bed file from `%s' failed: %v", filename, err)
  }
  return nil
}
