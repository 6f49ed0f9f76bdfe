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
import   "strconv"
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goclip"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose    int
  Upstream   int
  Downstream int
  Background float64
  Summary    SummaryStatistics
  Threads    int
  Status     bool
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importRegionsBed(config Config, filename string) Regions {
  regions := Regions{}
  PrintStderr(config, 1, "Reading regions from `%s'... ", filename)
  if err := regions.ImportBed6(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return regions
}

func importRegionsUCSC(config Config, database, table string) Regions {
  regions := Regions{}
  PrintStderr(config, 1, "Fetching regions from UCSC table `%s.%s'... ", database, table)
  if err := regions.ImportUCSC(database, table); err != nil {
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

func exportCounts(config Config, regions Regions, filename string, counts []float64) {
  if filename == "" {
    if err := regions.WriteCounts(os.Stdout, true, []string{"counts"}, counts); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing counts table to `%s'... ", filename)
    if err := regions.ExportCounts(filename, false, []string{"counts"}, counts); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func extract(config Config, regions Regions, filenameTrack, filenameOut string) {

  if config.Upstream != 0 || config.Downstream != 0 {
    r, err := regions.Extend(config.Upstream, config.Downstream)
    if err != nil {
      log.Fatal(err)
    }
    regions = r
  }
  track := importTrack(config, filenameTrack)

  countsConfig := DefaultCountsConfig()
  countsConfig.Background = config.Background
  countsConfig.Summary    = config.Summary
  countsConfig.Threads    = config.Threads
  countsConfig.Status     = config.Status

  if !config.Status {
    PrintStderr(config, 1, "Computing counts... ")
  }
  counts := regions.Counts(track, countsConfig)
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }
  exportCounts(config, regions, filenameOut, counts)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}

  options := getopt.New()

  optExtend     := options. StringLong("extend",     0 , "",    "extend regions by N,M positions in 5' and 3' direction")
  optBackground := options. StringLong("background", 0 , "",    "substitute value for positions missing from the track [default: 0]")
  optSummary    := options. StringLong("summary",    0 , "sum", "region summary statistics [sum (default), mean, max]")
  optOutput     := options. StringLong("output",     'o', "",   "write counts table to file [default: stdout]")
  optUCSC       := options. StringLong("ucsc",       0 , "",    "read regions from a UCSC table given as DATABASE:TABLE instead of a bed file")
  optThreads    := options.    IntLong("threads",    0 ,  1,    "number of threads")
  optStatus     := options.   BoolLong("status",     0 ,        "show status bar")
  optHelp       := options.   BoolLong("help",       'h',       "print help")
  optVerbose    := options.CounterLong("verbose",    'v',       "be verbose")

  options.SetParameters("<REGIONS.bed> <TRACK>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
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
  if s, err := SummaryStatisticsFromString(*optSummary); err != nil {
    log.Fatal(err)
  } else {
    config.Summary = s
  }
  config.Verbose = *optVerbose
  config.Threads = *optThreads
  config.Status  = *optStatus

  regions       := Regions{}
  filenameTrack := ""

  if *optUCSC != "" {
    if len(options.Args()) != 1 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    fields := strings.Split(*optUCSC, ":")
    if len(fields) != 2 {
      log.Fatal("parsing ucsc argument failed: argument must have format DATABASE:TABLE")
    }
    regions       = importRegionsUCSC(config, fields[0], fields[1])
    filenameTrack = options.Args()[0]
  } else {
    if len(options.Args()) != 2 {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
    regions       = importRegionsBed(config, options.Args()[0])
    filenameTrack = options.Args()[1]
  }
  extract(config, regions, filenameTrack, *optOutput)
}
