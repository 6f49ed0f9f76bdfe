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

/* -------------------------------------------------------------------------- */

// Extend generates a region set where each region is extended by the given
// number of positions in 5' and 3' direction. For regions on the minus
// strand the extension is flipped to the other genomic side, regions without
// strand information are treated like regions on the plus strand. Negative
// window bounds are clipped at zero, genomic bounds on the right are not
// checked.
func (regions Regions) Extend(upstream, downstream int) (Regions, error) {
  result := Regions{}
  if upstream < 0 || downstream < 0 {
    return result, fmt.Errorf("Extend(): upstream and downstream arguments must be non-negative")
  }
  result = regions.Clone()

  for i := 0; i < regions.Length(); i++ {
    from, to := 0, 0
    if regions.Strand[i] == '-' {
      from = regions.Ranges[i].From - downstream
      to   = regions.Ranges[i].To   + upstream
    } else {
      from = regions.Ranges[i].From - upstream
      to   = regions.Ranges[i].To   + downstream
    }
    if from < 0 {
      from = 0
    }
    result.Ranges[i] = NewRange(from, to)
  }
  return result, nil
}
