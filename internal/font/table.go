package font

const (
	// CellWidth is the number of columns each glyph occupies in a row.
	CellWidth = 6
	// Height is the number of rows in every glyph.
	Height = 5
	// Cells is the number of glyph cells in each row of the table.
	Cells = 41
)

// rows holds the bitmap font. Cell i of every row belongs to the same glyph.
// Cell 30 is reserved: it carries art but nothing resolves to it.
var rows = [Height]string{
	" ***  ****   ***  ****  ***** *****  ***  *   * ***** ***** *   * *     *   * *   *  ***  ****   ***  ****   **** ***** *   * *   * *   * *   * *   * *****        ***                     ***  ***   ****  ****  *   * *****  ***  *****  ***  ***** ",
	"*   * *   * *   * *   * *     *     *     *   *   *      *  *  *  *     ** ** **  * *   * *   * *   * *   * *       *   *   * *   * *   *  * *   * *     *        * ***                   *   *   *       *     * *   * *     *         * *   * *   * ",
	"*   * ****  *     *   * ***   ****  *  ** *****   *      *  ***   *     * * * * * * *   * ****  *   * ****  *****   *   *   * *   * * * *   *     *     *         * * *       *****       *   *   *       *   **  ***** ****  ****      *  ***  ***** ",
	"***** *   * *   * *   * *     *     *   * *   *   *   *  *  *  *  *     *   * *  ** *   * *     *   * *  *      *   *   *   *  * *  ** **  * *    *    *          * * *              ***  *   *   *   ***       *     *     * *   *     * *   *     * ",
	"*   * ****   ***  ****  ***** *      ***  *   * *****  ***  *   * ***** *   * *   *  ***  *      ***  *   * ****    *   *****   *   *   * *   *   *   *****        ***  *****        ***   ***  ***** ***** ****      * ****   ***      *  ***      * ",
}

// Cell returns the CellWidth-wide slice of row y that holds glyph index i.
func Cell(y, i int) string {
	start := i * CellWidth
	return rows[y][start : start+CellWidth]
}
