// internal/feedback/score.go
//
// Score implements the standard two-pass Wordle evaluation.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the solution letters left over at non-exact positions.
//
// Pass 2:
//   - For each non-exact guess letter: if a leftover copy of that letter
//     remains, mark Present and use it up; otherwise mark Absent.
//
// A letter is therefore never marked more times than it occurs in the
// solution, and exact matches claim their copies first.

package feedback

import "github.com/robalobadob/wordle/apps/guesser/internal/words"

// Score returns the code guess receives when the solution is solution.
// It is not symmetric: Score(a, b) != Score(b, a) in general.
func Score(guess, solution words.Word) Code {
	var res Code
	var exact [words.Length]bool

	// Letter supply for the non-exact positions (a–z).
	var counts [26]int8

	// First pass: exact matches and leftover counts.
	for i := 0; i < words.Length; i++ {
		if guess[i] == solution[i] {
			res[i] = Exact
			exact[i] = true
		} else {
			counts[solution[i]-'a']++
		}
	}

	// Second pass: presents/absents for the remaining positions.
	for i := 0; i < words.Length; i++ {
		if exact[i] {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = Present
			counts[j]--
		}
	}
	return res
}
