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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"
import   "path/filepath"
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goclip"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose     int
  Upstream    int
  Downstream  int
  Background  float64
  Summary     SummaryStatistics
  Pseudocount float64
  AxisMax     float64
  SaveCounts  string
  Threads     int
  Status      bool
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importRegions(config Config, filename string) Regions {
  regions := Regions{}
  PrintStderr(config, 1, "Reading regions from `%s'... ", filename)
  if err := regions.ImportBed6(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return regions
}

func importTrack(config Config, filename string) Track {
  track := NewTrack(filename)
  PrintStderr(config, 1, "Reading track `%s'... ", filename)
  if err := track.Import(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return track
}

func computeCounts(config Config, regions Regions, track Track, name string) []float64 {
  countsConfig := DefaultCountsConfig()
  countsConfig.Background = config.Background
  countsConfig.Summary    = config.Summary
  countsConfig.Threads    = config.Threads
  countsConfig.Status     = config.Status

  if !config.Status {
    PrintStderr(config, 1, "Computing counts for track `%s'... ", name)
  }
  counts := regions.Counts(track, countsConfig)
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }
  return counts
}

func exportCounts(config Config, regions Regions, filename string, counts1, counts2 []float64) {
  PrintStderr(config, 1, "Writing counts table to `%s'... ", filename)
  if err := regions.ExportCounts(filename, false, []string{"counts1", "counts2"}, counts1, counts2); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func correlate(config Config, filenameRegions, filenameTrack1, filenameTrack2, stem string) {

  regions := importRegions(config, filenameRegions)

  if config.Upstream != 0 || config.Downstream != 0 {
    r, err := regions.Extend(config.Upstream, config.Downstream)
    if err != nil {
      log.Fatal(err)
    }
    regions = r
  }
  track1 := importTrack(config, filenameTrack1)
  track2 := importTrack(config, filenameTrack2)

  counts1 := computeCounts(config, regions, track1, filenameTrack1)
  counts2 := computeCounts(config, regions, track2, filenameTrack2)

  if config.SaveCounts != "" {
    exportCounts(config, regions, config.SaveCounts, counts1, counts2)
  }
  x := LogTransform(counts1, config.Pseudocount)
  y := LogTransform(counts2, config.Pseudocount)

  r, pvalue, err := PearsonCorrelation(x, y)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Pearson correlation: r = %f, p = %g\n", r, pvalue)

  scatterConfig := DefaultScatterConfig()
  scatterConfig.AxisMax = config.AxisMax
  scatterConfig.XLabel  = fmt.Sprintf("log2 counts %s", filepath.Base(filenameTrack1))
  scatterConfig.YLabel  = fmt.Sprintf("log2 counts %s", filepath.Base(filenameTrack2))

  filenames := DefaultPlotFilenames(stem)

  PrintStderr(config, 1, "Writing scatter plot to `%s'... ", strings.Join(filenames, "', `"))
  if err := PlotScatter(x, y, r, pvalue, scatterConfig, filenames...); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}

  options := getopt.New()

  optExtend      := options. StringLong("extend",       0 , "",    "extend regions by N,M positions in 5' and 3' direction")
  optBackground  := options. StringLong("background",   0 , "",    "substitute value for positions missing from the track [default: 0]")
  optSummary     := options. StringLong("summary",      0 , "sum", "region summary statistics [sum (default), mean, max]")
  optPseudocount := options. StringLong("pseudocount",  0 , "",    "pseudocount added before the log transformation [default: 1]")
  optAxisMax     := options. StringLong("axis-max",     0 , "",    "upper axis limit of the scatter plot [default: 15]")
  optOutput      := options. StringLong("output",       'o', "bindingSiteCorrelation", "output file name stem")
  optSaveCounts  := options. StringLong("save-counts",  0 , "",    "write region counts table to file")
  optThreads     := options.    IntLong("threads",      0 ,  1,    "number of threads")
  optStatus      := options.   BoolLong("status",       0 ,        "show status bar")
  optHelp        := options.   BoolLong("help",         'h',       "print help")
  optVerbose     := options.CounterLong("verbose",      'v',       "be verbose")

  options.SetParameters("<REGIONS.bed> <TRACK1> <TRACK2>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optExtend != "" {
    fields := strings.Split(*optExtend, ",")
    if len(fields) != 2 {
      log.Fatal("parsing extension failed: argument must have format N,M")
    }
    v1, err := strconv.ParseInt(fields[0], 10, 64)
    if err != nil {
      log.Fatalf("parsing extension failed: %v", err)
    }
    v2, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      log.Fatalf("parsing extension failed: %v", err)
    }
    config.Upstream   = int(v1)
    config.Downstream = int(v2)
  }
  if *optBackground != "" {
    v, err := strconv.ParseFloat(*optBackground, 64)
    if err != nil {
      log.Fatalf("parsing background value failed: %v", err)
    }
    config.Background = v
  } else {
    config.Background = 0.0
  }
  if *optPseudocount != "" {
    v, err := strconv.ParseFloat(*optPseudocount, 64)
    if err != nil {
      log.Fatalf("parsing pseudocount failed: %v", err)
    }
    config.Pseudocount = v
  } else {
    config.Pseudocount = 1.0
  }
  if *optAxisMax != "" {
    v, err := strconv.ParseFloat(*optAxisMax, 64)
    if err != nil {
      log.Fatalf("parsing axis limit failed: %v", err)
    }
    config.AxisMax = v
  } else {
    config.AxisMax = 15.0
  }
  if s, err := SummaryStatisticsFromString(*optSummary); err != nil {
    log.Fatal(err)
  } else {
    config.Summary = s
  }
  config.Verbose    = *optVerbose
  config.SaveCounts = *optSaveCounts
  config.Threads    = *optThreads
  config.Status     = *optStatus

  filenameRegions := options.Args()[0]
  filenameTrack1  := options.Args()[1]
  filenameTrack2  := options.Args()[2]

  correlate(config, filenameRegions, filenameTrack1, filenameTrack2, *optOutput)
}
