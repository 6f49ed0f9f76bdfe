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

/* i/o
 * -------------------------------------------------------------------------- */

// Export regions as a table with one additional column per counts vector.
// The first line contains the header of the table. Every counts vector must
// have one value per region.
func (regions Regions) WriteCounts(w io.Writer, header bool, names []string, counts ...[]float64) error {
  if len(names) != len(counts) {
    return fmt.Errorf("WriteCounts(): number of column names does not match number of columns")
  }
  for j := 0; j < len(counts); j++ {
    if len(counts[j]) != regions.Length() {
      return fmt.Errorf("WriteCounts(): column `%s' has invalid length", names[j])
    }
  }
  // print header
  if header {
    if _, err := fmt.Fprintf(w, "%14s %10s %10s %14s %10s %6s", "seqnames", "from", "to", "name", "score", "strand"); err != nil {
      return err
    }
    for j := 0; j < len(counts); j++ {
      if _, err := fmt.Fprintf(w, " %14s", names[j]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  // print data
  for i := 0; i < regions.Length(); i++ {
    if _, err := fmt.Fprintf(w,  "%14s", regions.Seqnames[i]); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, " %10d", regions.Ranges[i].From); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, " %10d", regions.Ranges[i].To); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, " %14s", regions.Names[i]); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, " %10f", regions.Scores[i]); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, " %6c", regions.Strand[i]); err != nil {
      return err
    }
    for j := 0; j < len(counts); j++ {
      if _, err := fmt.Fprintf(w, " %14f", counts[j][i]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(w, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (regions Regions) ExportCounts(filename string, compress bool, names []string, counts ...[]float64) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := regions.WriteCounts(w, true, names, counts...); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
