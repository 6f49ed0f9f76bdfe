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
import "errors"
import "fmt"
import "io"
import "os"
import "sort"
import "strconv"
import "strings"

/* i/o
 * -------------------------------------------------------------------------- */

func (track Track) writeWiggle_variableStep(w io.Writer, seqname string) error {
  if _, err := fmt.Fprintf(w, "variableStep chrom=%s span=1\n", seqname); err != nil {
    return err
  }
  positions := track.Data[seqname]
  sorted    := make([]int, 0, len(positions))
  for position := range positions {
    sorted = append(sorted, position)
  }
  sort.Ints(sorted)
  for _, position := range sorted {
    if _, err := fmt.Fprintf(w, "%d %f\n", position+1, positions[position]); err != nil {
      return err
    }
  }
  return nil
}

// Export the track to wiggle format. Since the track is sparse, variable
// step formatting is used for all sequences.
func (track Track) WriteWiggle(w io.Writer, description string) error {
  if _, err := fmt.Fprintf(w, "track type=wiggle_0 name=\"%s\" description=\"%s\"\n", track.Name, description); err != nil {
    return err
  }
  for _, seqname := range track.Seqnames() {
    if err := track.writeWiggle_variableStep(w, seqname); err != nil {
      return err
    }
  }
  return nil
}

func (track Track) ExportWiggle(filename, description string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := track.WriteWiggle(w, description); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

func readWiggle_header(scanner *bufio.Scanner, result *Track) error {
  fields := fieldsQuoted(scanner.Text())

  for i := 1; i < len(fields); i++ {
    headerFields := strings.FieldsFunc(fields[i], func(r rune) bool { return r == '=' })
    if len(headerFields) != 2 {
      return errors.New("invalid declaration line")
    }
    switch headerFields[0] {
    case "name":
      result.Name = removeQuotes(headerFields[1])
    case "type":
      if removeQuotes(headerFields[1]) != "wiggle_0" {
        return errors.New("unsupported wiggle format")
      }
    }
  }
  return nil
}

func readWiggle_fixedStep(scanner *bufio.Scanner, result *Track) error {
  fields   := fieldsQuoted(scanner.Text())
  seqname  := ""
  position := -1
  // parse declaration line
  for i := 1; i < len(fields); i++ {
    headerFields := strings.FieldsFunc(fields[i], func(r rune) bool { return r == '=' })
    if len(headerFields) != 2 {
      return errors.New("invalid declaration line")
    }
    switch headerFields[0] {
    case "chrom": seqname = removeQuotes(headerFields[1])
    case "start":
      t, err := strconv.ParseInt(headerFields[1], 10, 64)
      if err != nil {
        return err
      }
      position = int(t)-1
    case "step":
      t, err := strconv.ParseInt(headerFields[1], 10, 64)
      if err != nil {
        return err
      }
      if int(t) != 1 {
        return errors.New("step sizes other than one are not supported")
      }
    case "span":
      t, err := strconv.ParseInt(headerFields[1], 10, 64)
      if err != nil {
        return err
      }
      if int(t) != 1 {
        return errors.New("span sizes other than one are not supported")
      }
    }
  }
  if seqname == "" {
    return errors.New("declaration line is missing the chromosome name")
  }
  if position < 0 {
    return errors.New("declaration line defines invalid start position")
  }
  // parse data
  for scanner.Scan() {
    fields = strings.Fields(scanner.Text())
    if len(fields) != 1 {
      break
    }
    t, err := strconv.ParseFloat(fields[0], 64)
    if err != nil {
      return err
    }
    result.Set(seqname, position, t)
    position++
  }
  return nil
}

func readWiggle_variableStep(scanner *bufio.Scanner, result *Track) error {
  fields  := fieldsQuoted(scanner.Text())
  seqname := ""
  // parse declaration line
  for i := 1; i < len(fields); i++ {
    headerFields := strings.FieldsFunc(fields[i], func(r rune) bool { return r == '=' })
    if len(headerFields) != 2 {
      return errors.New("invalid declaration line")
    }
    switch headerFields[0] {
    case "chrom": seqname = removeQuotes(headerFields[1])
    case "span":
      t, err := strconv.ParseInt(headerFields[1], 10, 64)
      if err != nil {
        return err
      }
      if int(t) != 1 {
        return errors.New("span sizes other than one are not supported")
      }
    }
  }
  if seqname == "" {
    return errors.New("declaration line is missing the chromosome name")
  }
  // parse data
  for scanner.Scan() {
    fields = strings.Fields(scanner.Text())
    if len(fields) != 2 {
      break
    }
    t1, err := strconv.ParseInt(fields[0], 10, 64)
    if err != nil {
      return err
    }
    t2, err := strconv.ParseFloat(fields[1], 64)
    if err != nil {
      return err
    }
    if t1 <= 0 {
      return errors.New("invalid chromosomal position")
    }
    result.Set(seqname, int(t1)-1, t2)
  }
  return nil
}

// Import data from wiggle files. The track must have single nucleotide
// resolution, i.e. span and step sizes other than one are not accepted.
func (track *Track) ReadWiggle(reader io.Reader) error {

  if track.Data == nil {
    track.Data = make(map[string]map[int]float64)
  }
  header  := false
  fields  := []string{}
  scanner := bufio.NewScanner(reader)

  if !scanner.Scan() {
    return nil
  }
  for {
    fields = strings.Fields(scanner.Text())
    if len(fields) == 0 {
      break
    }
    // header?
    if fields[0] == "track" {
      if header == false {
        header = true
        if err := readWiggle_header(scanner, track); err != nil {
          return err
        }
        if !scanner.Scan() {
          return nil
        }
      } else {
        return errors.New("file contains more than one track definition line")
      }
    } else if fields[0] == "browser" {
      // skip any browser options
      if !scanner.Scan() {
        return nil
      }
    } else if fields[0] == "fixedStep" {
      if err := readWiggle_fixedStep(scanner, track); err != nil {
        return err
      }
    } else if fields[0] == "variableStep" {
      if err := readWiggle_variableStep(scanner, track); err != nil {
        return err
      }
    } else {
      return errors.New("unknown sequence type (i.e. not fixedStep or variableStep)")
    }
  }
  return nil
}

func (track *Track) ImportWiggle(filename string) error {
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
  if err := track.ReadWiggle(r); err != nil {
    return fmt.Errorf("importing wiggle file from `%s' failed: %v", filename, err)
  }
  return nil
}
