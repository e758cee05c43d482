// Package sentiment implements lexical sentiment classification.
//
// The Classifier matches lowercased text against two ordered lists of
// word-boundary-anchored stem patterns. Positive stems are checked before
// negative ones, so a text matching both is labeled positive. No match in
// either list yields neutral. Classification is deterministic, side-effect-free
// and total over any input string.
package sentiment
