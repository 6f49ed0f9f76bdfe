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

import "fmt"
import "math"

import "github.com/pbenner/threadpool"

import "github.com/pbenner/goclip/lib/progress"

/* summary statistics
 * -------------------------------------------------------------------------- */

type SummaryStatistics func(sum, sumSquares, min, max, valid float64) float64

func SummarySum(sum, sumSquares, min, max, valid float64) float64 {
  return sum
}

func SummaryMean(sum, sumSquares, min, max, valid float64) float64 {
  return sum/valid
}

func SummaryMax(sum, sumSquares, min, max, valid float64) float64 {
  return max
}

func SummaryStatisticsFromString(name string) (SummaryStatistics, error) {
  switch name {
  case "sum":
    return SummarySum, nil
  case "mean":
    return SummaryMean, nil
  case "max":
    return SummaryMax, nil
  }
  return nil, fmt.Errorf("invalid summary statistics: %s", name)
}

/* -------------------------------------------------------------------------- */

type CountsConfig struct {
  Background float64
  Summary    SummaryStatistics
  Threads    int
  Status     bool
}

func DefaultCountsConfig() CountsConfig {
  config := CountsConfig{}
  config.Background = 0.0
  config.Summary    = SummarySum
  config.Threads    = 1
  return config
}

/* -------------------------------------------------------------------------- */

// trackValue is the single place where positions that are not part of the
// track are replaced by the background value.
func trackValue(track Track, seqname string, position int, background float64) float64 {
  if value, ok := track.At(seqname, position); ok {
    return value
  }
  return background
}

func (regions Regions) countsRow(track Track, config CountsConfig, i int) float64 {
  seqname := regions.Seqnames[i]
  from    := regions.Ranges[i].From
  to      := regions.Ranges[i].To

  sum        := 0.0
  sumSquares := 0.0
  min        := math.Inf( 1)
  max        := math.Inf(-1)
  valid      := 0.0
  // every position in [from, to) is sampled at single nucleotide
  // resolution and with equal weight
  for k := from; k < to; k++ {
    value := trackValue(track, seqname, k, config.Background)
    sum        += value
    sumSquares += value*value
    if value < min {
      min = value
    }
    if value > max {
      max = value
    }
    valid += 1.0
  }
  if valid == 0.0 {
    return 0.0
  }
  return config.Summary(sum, sumSquares, min, max, valid)
}

// Counts evaluates the summary statistics of the track over every region.
// The result has one value per region, in region order. An empty region set
// yields an empty vector.
func (regions Regions) Counts(track Track, config CountsConfig) []float64 {
  if config.Summary == nil {
    config.Summary = SummarySum
  }
  if config.Threads < 1 {
    config.Threads = 1
  }
  pool   := threadpool.New(config.Threads, 100*config.Threads)
  counts := make([]float64, regions.Length())

  g := pool.NewJobGroup()

  for n, i := regions.Length(), 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    // add task to the thread pool
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      counts[j] = regions.countsRow(track, config, j)
      return nil
    })
    if config.Status {
      progress.New(n, 1000).PrintStderr(i+1)
    }
  }
  pool.Wait(g)

  return counts
}
