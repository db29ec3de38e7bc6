// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package advisor

import "fmt"

// Supermajority is the number of votes strictly above two thirds of quorum
func Supermajority(quorum int) int {
	return 2*quorum/3 + 1
}

func QuorumLine(quorum int) string {
	return fmt.Sprintf("   - Quorum: %d validators", quorum)
}

func MinJurorsLine(quorum, minJurors int) string {
	return fmt.Sprintf("   - Min jurors: %d (2/3 of %d = %.2f → %d required)",
		minJurors, quorum, float64(2*quorum)/3, Supermajority(quorum))
}
