package sql

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "simple",
			script: "CREATE DATABASE a;\nDROP DATABASE a;\n",
			want:   []string{"CREATE DATABASE a", "DROP DATABASE a"},
		},
		{
			name:   "semicolon in string",
			script: "INSERT INTO t (id, v) VALUES (0, 'a;b');",
			want:   []string{"INSERT INTO t (id, v) VALUES (0, 'a;b')"},
		},
		{
			name:   "escaped quote",
			script: "INSERT INTO t (id, v) VALUES (0, 'O''Brien; Jr');SELECT * FROM t",
			want:   []string{"INSERT INTO t (id, v) VALUES (0, 'O''Brien; Jr')", "SELECT * FROM t"},
		},
		{
			name:   "comments",
			script: "-- header; ignored\nSELECT * FROM t; -- trailing\n",
			want:   []string{"SELECT * FROM t"},
		},
		{
			name:   "empty",
			script: " ;\n; ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.script)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d statements %q, got %d %q", len(tt.want), tt.want, len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Statement %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestSplitScript(t *testing.T) {
	database := setupCompany(t)

	statements := Split(Script(database))
	if len(statements) != 5 {
		t.Fatalf("Expected 5 statements, got %d: %q", len(statements), statements)
	}
	if statements[3] != "INSERT INTO people (id, name) VALUES (1, 'O''Brien')" {
		t.Errorf("Unexpected statement %q", statements[3])
	}
}
