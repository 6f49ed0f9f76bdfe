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

import "gonum.org/v1/gonum/stat"
import "gonum.org/v1/gonum/stat/distuv"

/* -------------------------------------------------------------------------- */

// LogTransform returns the vector log2(x + pseudocount). The pseudocount
// keeps zero counts finite after the transformation.
func LogTransform(x []float64, pseudocount float64) []float64 {
  result := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    result[i] = math.Log2(x[i] + pseudocount)
  }
  return result
}

// PearsonCorrelation computes the correlation coefficient of x and y
// together with the two-sided p-value for the null hypothesis of no
// correlation. The p-value is obtained from the t-distribution with n-2
// degrees of freedom. All entries enter the computation, the vectors are
// not filtered in any way.
func PearsonCorrelation(x, y []float64) (float64, float64, error) {
  if len(x) != len(y) {
    return math.NaN(), math.NaN(), fmt.Errorf("PearsonCorrelation(): vectors have different length")
  }
  if len(x) < 2 {
    return math.NaN(), math.NaN(), fmt.Errorf("PearsonCorrelation(): vectors must have at least two entries")
  }
  r := stat.Correlation(x, y, nil)
  // guard against rounding errors before computing the test statistic
  if r > 1.0 {
    r = 1.0
  }
  if r < -1.0 {
    r = -1.0
  }
  if math.IsNaN(r) {
    // one of the vectors has zero variance
    return r, math.NaN(), nil
  }
  if len(x) == 2 {
    // two points always fall on a line
    return r, 1.0, nil
  }
  if r == 1.0 || r == -1.0 {
    return r, 0.0, nil
  }
  n := float64(len(x))
  t := r*math.Sqrt((n-2.0)/(1.0-r*r))
  d := distuv.StudentsT{Mu: 0.0, Sigma: 1.0, Nu: n-2.0}
  p := 2.0*d.CDF(-math.Abs(t))

  return r, p, nil
}
