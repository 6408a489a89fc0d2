package output

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/reox/basicshapes/bcs"
	"github.com/reox/basicshapes/shapes"
)

const schemaSQL = `
CREATE TABLE attributes (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
CREATE TABLE image (
    z INTEGER NOT NULL,
    y INTEGER NOT NULL,
    x INTEGER NOT NULL,
    value REAL NOT NULL,
    PRIMARY KEY (z, y, x)
);
CREATE TABLE datasets (
    name TEXT NOT NULL,
    row INTEGER NOT NULL,
    c0 INTEGER NOT NULL,
    c1 INTEGER NOT NULL,
    c2 INTEGER NOT NULL,
    dof INTEGER NOT NULL,
    value REAL NOT NULL,
    PRIMARY KEY (name, row)
);`

// SQLiteWriter stores a dataset in a single sqlite file. Only material voxels
// are stored in the image table, the full Z-Y-X shape is kept as an attribute.
// Table rows are stored under the coordinates dataset name, c0..c2 hold the
// swapped (z, y, x) node coordinates.
type SQLiteWriter struct{}

func (w *SQLiteWriter) Write(path string, ds *Dataset) (err error) {
	if err = ds.check(); err != nil {
		return
	}
	if err = os.Remove(path); err != nil && !os.IsNotExist(err) {
		return
	}
	var db *sql.DB
	if db, err = sql.Open("sqlite", path); err != nil {
		return
	}
	defer db.Close()
	if _, err = db.Exec(schemaSQL); err != nil {
		return
	}
	var tx *sql.Tx
	if tx, err = db.Begin(); err != nil {
		return
	}
	if err = writeSQL(tx, ds); err != nil {
		tx.Rollback()
		return
	}
	if err = tx.Commit(); err != nil {
		return
	}
	logWritten("sqlite", path, ds)
	return
}

func writeSQL(tx *sql.Tx, ds *Dataset) (err error) {
	dims, data := ds.ImageZYX()
	attrs := [][2]string{
		{"RunID", ds.RunID.String()},
		{"Title", ds.Title},
		{PoissonName, strconv.FormatFloat(ds.Poisson, 'g', -1, 64)},
		{VoxelSizeName, strconv.FormatFloat(ds.VoxelSize, 'g', -1, 64)},
		{ImageName + "_shape", fmt.Sprintf("%d,%d,%d", dims[0], dims[1], dims[2])},
	}
	for _, kv := range attrs {
		if _, err = tx.Exec(`INSERT INTO attributes (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return
		}
	}
	var stmt *sql.Stmt
	if stmt, err = tx.Prepare(`INSERT INTO image (z, y, x, value) VALUES (?, ?, ?, ?)`); err != nil {
		return
	}
	defer stmt.Close()
	var i int
	for z := 0; z < dims[0]; z++ {
		for y := 0; y < dims[1]; y++ {
			for x := 0; x < dims[2]; x++ {
				if v := data[i]; v != 0 {
					if _, err = stmt.Exec(z, y, x, v); err != nil {
						return
					}
				}
				i++
			}
		}
	}
	if err = writeTable(tx, LoadCoordinates, ds.Loads); err != nil {
		return
	}
	return writeTable(tx, FixedCoordinates, ds.Constraints)
}

func writeTable(tx *sql.Tx, name string, t *bcs.Table) (err error) {
	if t == nil {
		return
	}
	var stmt *sql.Stmt
	if stmt, err = tx.Prepare(`INSERT INTO datasets (name, row, c0, c1, c2, dof, value)
VALUES (?, ?, ?, ?, ?, ?, ?)`); err != nil {
		return
	}
	defer stmt.Close()
	for i, c := range SwapXZ(t.Coordinates) {
		if _, err = stmt.Exec(name, i, c[0], c[1], c[2], c[3], t.Values[i]); err != nil {
			return
		}
	}
	return
}

// ReadSQLite loads a dataset written by SQLiteWriter back into the internal
// X-Y-Z convention
func ReadSQLite(path string) (ds *Dataset, err error) {
	if _, err = os.Stat(path); err != nil {
		return
	}
	var db *sql.DB
	if db, err = sql.Open("sqlite", path); err != nil {
		return
	}
	defer db.Close()
	attrs := make(map[string]string)
	var rows *sql.Rows
	if rows, err = db.Query(`SELECT key, value FROM attributes`); err != nil {
		return
	}
	for rows.Next() {
		var k, v string
		if err = rows.Scan(&k, &v); err != nil {
			rows.Close()
			return
		}
		attrs[k] = v
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}
	ds = &Dataset{Title: attrs["Title"]}
	if ds.RunID, err = uuid.Parse(attrs["RunID"]); err != nil {
		return nil, err
	}
	if ds.Poisson, err = strconv.ParseFloat(attrs[PoissonName], 64); err != nil {
		return nil, err
	}
	if ds.VoxelSize, err = strconv.ParseFloat(attrs[VoxelSizeName], 64); err != nil {
		return nil, err
	}
	var nz, ny, nx int
	if _, err = fmt.Sscanf(attrs[ImageName+"_shape"], "%d,%d,%d", &nz, &ny, &nx); err != nil {
		return nil, err
	}
	ds.Image = shapes.NewGrid(nx, ny, nz)
	if rows, err = db.Query(`SELECT z, y, x, value FROM image`); err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			z, y, x int
			v       float64
		)
		if err = rows.Scan(&z, &y, &x, &v); err != nil {
			rows.Close()
			return nil, err
		}
		ds.Image.Set(x, y, z, v)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if ds.Loads, err = readTable(db, LoadCoordinates); err != nil {
		return nil, err
	}
	if ds.Constraints, err = readTable(db, FixedCoordinates); err != nil {
		return nil, err
	}
	return
}

// readTable returns nil when no rows are stored under name
func readTable(db *sql.DB, name string) (t *bcs.Table, err error) {
	var rows *sql.Rows
	if rows, err = db.Query(`SELECT c0, c1, c2, dof, value FROM datasets WHERE name = ? ORDER BY row`, name); err != nil {
		return
	}
	defer rows.Close()
	var (
		coords [][4]int
		values []float64
	)
	for rows.Next() {
		var (
			c [4]int
			v float64
		)
		if err = rows.Scan(&c[0], &c[1], &c[2], &c[3], &v); err != nil {
			return
		}
		coords = append(coords, c)
		values = append(values, v)
	}
	if err = rows.Err(); err != nil || len(values) == 0 {
		return
	}
	t = &bcs.Table{Coordinates: SwapXZ(coords), Values: values}
	return
}
