// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING WITHOUT LIMITATION THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package similarity

import (
	"sort"

	mapset "github.com/deckarep/golang-set"
)

// NameSet is an immutable set of names (genres, cast, crew or keywords).
// Membership is exact and case-sensitive.
type NameSet struct {
	set mapset.Set
}

// NewNameSet builds a NameSet. Duplicate names collapse into one member.
func NewNameSet(names ...string) NameSet {
	set := mapset.NewThreadUnsafeSet()
	for _, name := range names {
		set.Add(name)
	}
	return NameSet{set: set}
}

// Len returns the number of distinct names.
func (s NameSet) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Cardinality()
}

// Contains reports whether name is a member.
func (s NameSet) Contains(name string) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(name)
}

// Names returns the members in sorted order.
func (s NameSet) Names() []string {
	names := make([]string, 0, s.Len())
	if s.set == nil {
		return names
	}
	for _, member := range s.set.ToSlice() {
		names = append(names, member.(string))
	}
	sort.Strings(names)
	return names
}

// Jaccard returns |a ∩ b| / |a ∪ b|. It is 0 when either set is empty, so
// missing categorical data never counts as agreement.
func Jaccard(a, b NameSet) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0
	}

	intersection := a.set.Intersect(b.set).Cardinality()
	union := a.Len() + b.Len() - intersection
	return float64(intersection) / float64(union)
}
