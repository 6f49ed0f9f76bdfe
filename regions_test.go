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

//import   "fmt"
import   "bytes"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestRegions1(t *testing.T) {

  regions := Regions{}
  if err := regions.ImportBed6("regions_test.bed"); err != nil {
    t.Error(err)
  }
  //fmt.Println(regions)

  if regions.Length() != 6 {
    t.Error("TestRegions1 failed!")
  }
  // records must keep file order
  if regions.Seqnames[0] != "chr1" || regions.Seqnames[2] != "chr2" || regions.Seqnames[5] != "chr11" {
    t.Error("TestRegions1 failed!")
  }
  if regions.Names[1] != "site2" {
    t.Error("TestRegions1 failed!")
  }
  if regions.Scores[5] != 10.5 {
    t.Error("TestRegions1 failed!")
  }
  // the bed strand placeholder must be converted
  if regions.Strand[2] != '*' {
    t.Error("TestRegions1 failed!")
  }
  // duplicated records must not be removed
  if regions.Seqnames[3] != regions.Seqnames[0] || regions.Ranges[3] != regions.Ranges[0] {
    t.Error("TestRegions1 failed!")
  }
  if regions.Row(4).Range.Length() != 0 {
    t.Error("TestRegions1 failed!")
  }
}

func TestRegions2(t *testing.T) {

  regions := Regions{}

  // record with five columns
  if err := regions.ReadBed6(strings.NewReader("chr1\t5\t10\tsite1\t1.0\n")); err == nil {
    t.Error("TestRegions2 failed!")
  }
  // record with non-numeric start position
  if err := regions.ReadBed6(strings.NewReader("chr1\tfoo\t10\tsite1\t1.0\t+\n")); err == nil {
    t.Error("TestRegions2 failed!")
  }
  // record with non-numeric score
  if err := regions.ReadBed6(strings.NewReader("chr1\t5\t10\tsite1\tbar\t+\n")); err == nil {
    t.Error("TestRegions2 failed!")
  }
  // record where the end precedes the start
  if err := regions.ReadBed6(strings.NewReader("chr1\t20\t10\tsite1\t1.0\t+\n")); err == nil {
    t.Error("TestRegions2 failed!")
  }
  // record with an invalid strand
  if err := regions.ReadBed6(strings.NewReader("chr1\t5\t10\tsite1\t1.0\tx\n")); err == nil {
    t.Error("TestRegions2 failed!")
  }
}

func TestRegions3(t *testing.T) {

  regions := Regions{}
  if err := regions.ReadBed6(strings.NewReader("")); err != nil {
    t.Error(err)
  }
  if regions.Length() != 0 {
    t.Error("TestRegions3 failed!")
  }
}

func TestRegions4(t *testing.T) {

  seqnames := []string{"chr1", "chr2"}
  from     := []int{100, 300}
  to       := []int{200, 400}
  names    := []string{"a", "b"}
  scores   := []float64{1.0, 2.5}
  strand   := []byte{'+', '*'}

  regions1 := NewRegions(seqnames, from, to, names, scores, strand)

  buffer := bytes.Buffer{}
  if err := regions1.WriteBed6(&buffer); err != nil {
    t.Error(err)
  }
  regions2 := Regions{}
  if err := regions2.ReadBed6(&buffer); err != nil {
    t.Error(err)
  }
  if regions2.Length() != regions1.Length() {
    t.Error("TestRegions4 failed!")
  }
  for i := 0; i < regions1.Length(); i++ {
    if regions1.Seqnames[i] != regions2.Seqnames[i] {
      t.Error("TestRegions4 failed!")
    }
    if regions1.Ranges[i] != regions2.Ranges[i] {
      t.Error("TestRegions4 failed!")
    }
    if regions1.Names[i] != regions2.Names[i] {
      t.Error("TestRegions4 failed!")
    }
    if regions1.Scores[i] != regions2.Scores[i] {
      t.Error("TestRegions4 failed!")
    }
    if regions1.Strand[i] != regions2.Strand[i] {
      t.Error("TestRegions4 failed!")
    }
  }
}

func TestRegions5(t *testing.T) {

  seqnames := []string{"chr1", "chr2", "chr3"}
  from     := []int{100, 300, 500}
  to       := []int{200, 400, 600}

  regions1 := NewRegions(seqnames, from, to, nil, nil, nil)
  regions2 := regions1.Slice(1, 3)

  if regions2.Length() != 2 || regions2.Seqnames[0] != "chr2" {
    t.Error("TestRegions5 failed!")
  }
  regions3 := regions1.Subset([]int{2, 0})
  if regions3.Length() != 2 || regions3.Seqnames[0] != "chr3" || regions3.Seqnames[1] != "chr1" {
    t.Error("TestRegions5 failed!")
  }
  regions4 := regions2.Append(regions3)
  if regions4.Length() != 4 || regions4.Seqnames[3] != "chr1" {
    t.Error("TestRegions5 failed!")
  }
  // default columns
  if regions1.Names[0] != "." || regions1.Scores[0] != 0.0 || regions1.Strand[0] != '*' {
    t.Error("TestRegions5 failed!")
  }
  if len(regions1.String()) == 0 {
    t.Error("TestRegions5 failed!")
  }
}

func TestRegionsExtend1(t *testing.T) {

  seqnames := []string{"chr1", "chr1", "chr1"}
  from     := []int{100, 100, 3}
  to       := []int{200, 200, 20}
  strand   := []byte{'+', '-', '*'}

  regions  := NewRegions(seqnames, from, to, nil, nil, strand)

  result, err := regions.Extend(10, 5)
  if err != nil {
    t.Error(err)
  }
  // plus strand: upstream extends to the left
  if result.Ranges[0] != NewRange(90, 205) {
    t.Error("TestRegionsExtend1 failed!")
  }
  // minus strand: upstream extends to the right
  if result.Ranges[1] != NewRange(95, 210) {
    t.Error("TestRegionsExtend1 failed!")
  }
  // window bounds are clipped at zero
  if result.Ranges[2] != NewRange(0, 25) {
    t.Error("TestRegionsExtend1 failed!")
  }
  if _, err := regions.Extend(-1, 0); err == nil {
    t.Error("TestRegionsExtend1 failed!")
  }
}
