package day20

// The sea monster, 20 cells wide and 3 tall:
//
//	                  #
//	#    ##    ##    ###
//	 #  #  #  #  #  #
const (
	monsterWidth  = 20
	monsterHeight = 3
)

var monsterOffsets = [][2]int{
	{18, 0},
	{0, 1}, {5, 1}, {6, 1}, {11, 1}, {12, 1}, {17, 1}, {18, 1}, {19, 1},
	{1, 2}, {4, 2}, {7, 2}, {10, 2}, {13, 2}, {16, 2},
}

// markMonsters returns the set of cells belonging to any monster.
// Overlapping monsters share cells.
func markMonsters(im image) map[[2]int]bool {
	marked := map[[2]int]bool{}
	for y := 0; y+monsterHeight <= im.size; y++ {
		for x := 0; x+monsterWidth <= im.size; x++ {
			found := true
			for _, off := range monsterOffsets {
				if !im.at(x+off[0], y+off[1]) {
					found = false
					break
				}
			}
			if !found {
				continue
			}
			for _, off := range monsterOffsets {
				marked[[2]int{x + off[0], y + off[1]}] = true
			}
		}
	}
	return marked
}

// roughness counts waves that belong to no sea monster, trying all
// eight orientations of the picture. The second result reports whether
// any monster was found.
func roughness(im image) (int, bool) {
	for _, o := range im.orientations() {
		if marked := markMonsters(o); len(marked) > 0 {
			return o.popCount() - len(marked), true
		}
	}
	return 0, false
}
