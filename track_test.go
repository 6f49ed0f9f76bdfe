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

func TestTrack1(t *testing.T) {

  track := NewTrack("test")

  track.Set("chrX", 100, 13.0)
  track.Add("chrX", 100, 10.0)

  if v, _ := track.At("chrX", 100); v != 23 {
    t.Error("TestTrack1 failed!")
  }
  // a position that was never set is not part of the track
  if _, ok := track.At("chrX", 101); ok {
    t.Error("TestTrack1 failed!")
  }
  if _, ok := track.At("chrY", 100); ok {
    t.Error("TestTrack1 failed!")
  }
  // a position with value zero is part of the track
  track.Set("chrX", 101, 0.0)
  if v, ok := track.At("chrX", 101); !ok || v != 0.0 {
    t.Error("TestTrack1 failed!")
  }
  if track.Positions() != 2 {
    t.Error("TestTrack1 failed!")
  }
}

func TestTrackBedGraph1(t *testing.T) {

  track := NewTrack("")
  if err := track.ImportBedGraph("track_test.bedGraph"); err != nil {
    t.Error(err)
  }
  // the record [0, 3) must be expanded to single positions
  for i := 0; i < 3; i++ {
    if v, ok := track.At("chr1", i); !ok || v != 2.0 {
      t.Error("TestTrackBedGraph1 failed!")
    }
  }
  // positions between records are not part of the track
  if _, ok := track.At("chr1", 3); ok {
    t.Error("TestTrackBedGraph1 failed!")
  }
  if v, ok := track.At("chr1", 5); !ok || v != 4.0 {
    t.Error("TestTrackBedGraph1 failed!")
  }
  if v, ok := track.At("chr2", 11); !ok || v != 1.5 {
    t.Error("TestTrackBedGraph1 failed!")
  }
  if track.Positions() != 6 {
    t.Error("TestTrackBedGraph1 failed!")
  }
}

func TestTrackBedGraph2(t *testing.T) {

  track := NewTrack("")

  // record with three columns
  if err := track.ReadBedGraph(strings.NewReader("chr1\t0\t10\n")); err == nil {
    t.Error("TestTrackBedGraph2 failed!")
  }
  // record with non-numeric value
  if err := track.ReadBedGraph(strings.NewReader("chr1\t0\t10\tfoo\n")); err == nil {
    t.Error("TestTrackBedGraph2 failed!")
  }
  // record where the end precedes the start
  if err := track.ReadBedGraph(strings.NewReader("chr1\t10\t0\t1.0\n")); err == nil {
    t.Error("TestTrackBedGraph2 failed!")
  }
}

func TestTrackBedGraph3(t *testing.T) {

  track1 := NewTrack("")
  if err := track1.ImportBedGraph("track_test.bedGraph"); err != nil {
    t.Error(err)
  }
  // adjacent positions with equal values must be merged back into a single
  // record
  buffer := bytes.Buffer{}
  if err := track1.WriteBedGraph(&buffer); err != nil {
    t.Error(err)
  }
  if len(strings.Split(strings.TrimSpace(buffer.String()), "\n")) != 3 {
    t.Error("TestTrackBedGraph3 failed!")
  }
  track2 := NewTrack("")
  if err := track2.ReadBedGraph(&buffer); err != nil {
    t.Error(err)
  }
  if track2.Positions() != track1.Positions() {
    t.Error("TestTrackBedGraph3 failed!")
  }
  for seqname, positions := range track1.Data {
    for position, value := range positions {
      if v, ok := track2.At(seqname, position); !ok || v != value {
        t.Error("TestTrackBedGraph3 failed!")
      }
    }
  }
}

func TestTrackWiggle1(t *testing.T) {

  track := NewTrack("")
  if err := track.ImportWiggle("track_test.wig"); err != nil {
    t.Error(err)
  }
  if track.Name != "testwig" {
    t.Error("TestTrackWiggle1 failed!")
  }
  // fixedStep positions are 1-based, start=11 maps to position 10
  if v, ok := track.At("chr1", 10); !ok || v != 1.0 {
    t.Error("TestTrackWiggle1 failed!")
  }
  if v, ok := track.At("chr1", 12); !ok || v != 3.0 {
    t.Error("TestTrackWiggle1 failed!")
  }
  if _, ok := track.At("chr1", 9); ok {
    t.Error("TestTrackWiggle1 failed!")
  }
  // variableStep positions are 1-based as well
  if v, ok := track.At("chr2", 4); !ok || v != 1.5 {
    t.Error("TestTrackWiggle1 failed!")
  }
  if v, ok := track.At("chr2", 7); !ok || v != 2.5 {
    t.Error("TestTrackWiggle1 failed!")
  }
  if track.Positions() != 5 {
    t.Error("TestTrackWiggle1 failed!")
  }
}

func TestTrackWiggle2(t *testing.T) {

  track := NewTrack("")

  // the track has single nucleotide resolution, wider spans must be
  // rejected
  if err := track.ReadWiggle(strings.NewReader(
      "variableStep chrom=chr1 span=10\n1 1.0\n")); err == nil {
    t.Error("TestTrackWiggle2 failed!")
  }
  if err := track.ReadWiggle(strings.NewReader(
      "fixedStep chrom=chr1 start=1 step=20\n1.0\n")); err == nil {
    t.Error("TestTrackWiggle2 failed!")
  }
  // wiggle positions are 1-based, position zero is invalid
  if err := track.ReadWiggle(strings.NewReader(
      "variableStep chrom=chr1 span=1\n0 1.0\n")); err == nil {
    t.Error("TestTrackWiggle2 failed!")
  }
}

func TestTrackWiggle3(t *testing.T) {

  track1 := NewTrack("")
  if err := track1.ImportWiggle("track_test.wig"); err != nil {
    t.Error(err)
  }
  buffer := bytes.Buffer{}
  if err := track1.WriteWiggle(&buffer, "test track"); err != nil {
    t.Error(err)
  }
  track2 := NewTrack("")
  if err := track2.ReadWiggle(&buffer); err != nil {
    t.Error(err)
  }
  if track2.Positions() != track1.Positions() {
    t.Error("TestTrackWiggle3 failed!")
  }
  for seqname, positions := range track1.Data {
    for position, value := range positions {
      if v, ok := track2.At(seqname, position); !ok || v != value {
        t.Error("TestTrackWiggle3 failed!")
      }
    }
  }
}

func TestTrackImport1(t *testing.T) {

  // format dispatch on the file name extension
  track1 := NewTrack("")
  if err := track1.Import("track_test.bedGraph"); err != nil {
    t.Error(err)
  }
  if v, ok := track1.At("chr1", 5); !ok || v != 4.0 {
    t.Error("TestTrackImport1 failed!")
  }
  track2 := NewTrack("")
  if err := track2.Import("track_test.wig"); err != nil {
    t.Error(err)
  }
  if v, ok := track2.At("chr1", 10); !ok || v != 1.0 {
    t.Error("TestTrackImport1 failed!")
  }
}
