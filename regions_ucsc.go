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
import "database/sql"

import _ "github.com/go-sql-driver/mysql"

/* import regions from ucsc
 * -------------------------------------------------------------------------- */

// Import regions from the UCSC public MySQL server. The table must be
// bed-shaped, i.e. it must have the columns chrom, chromStart, chromEnd,
// name, score, and strand.
func (r *Regions) ImportUCSC(genome, table string) error {
  /* variables for storing a single database row */
  var i_seqname, i_name, i_strand string
  var i_from, i_to int
  var i_score float64

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  names    := []string{}
  scores   := []float64{}
  strand   := []byte{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT chrom, chromStart, chromEnd, name, score, strand FROM %s", table))
  if err != nil {
    return err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_seqname, &i_from, &i_to, &i_name, &i_score, &i_strand); err != nil {
      return err
    }
    seqnames = append(seqnames, i_seqname)
    from     = append(from,     i_from)
    to       = append(to,       i_to)
    names    = append(names,    i_name)
    scores   = append(scores,   i_score)
    if len(i_strand) == 0 || i_strand[0] == '.' {
      strand = append(strand, '*')
    } else {
      strand = append(strand, i_strand[0])
    }
  }
  if err := rows.Err(); err != nil {
    return err
  }
  *r = NewRegions(seqnames, from, to, names, scores, strand)

  return nil
}
