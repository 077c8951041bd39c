package types

// Face represents a board presentation mode.
type Face string

const (
	FaceCanvas   Face = "canvas"
	FaceNotebook Face = "notebook"
	FaceNotes    Face = "notes"
)

// ValidFace reports whether s names a known face.
func ValidFace(s string) bool {
	switch Face(s) {
	case FaceCanvas, FaceNotebook, FaceNotes:
		return true
	}
	return false
}

// CellType represents the content kind of a notebook cell.
type CellType string

const (
	CellTypeMarkdown CellType = "markdown"
	CellTypeCode     CellType = "code"
	CellTypeSQL      CellType = "sql"
)

// Group represents a top-level board collection.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	OwnerNodeID string `json:"owner_node_id,omitempty"`
}

// Workspace represents a named space inside a group.
type Workspace struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	Name        string `json:"name"`
	CreatedAt   int64  `json:"created_at"`
	OwnerNodeID string `json:"owner_node_id,omitempty"`
}

// Board represents a single board and its active face.
type Board struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Face        Face   `json:"face"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	OwnerNodeID string `json:"owner_node_id,omitempty"`
}

// BoardCard is a board joined with its group and workspace for listing.
type BoardCard struct {
	Board
	GroupID       string `json:"group_id"`
	GroupName     string `json:"group_name"`
	GroupColor    string `json:"group_color,omitempty"`
	WorkspaceName string `json:"workspace_name"`
}

// Cell represents one unit of notebook content.
type Cell struct {
	ID       string   `json:"id"`
	CellType CellType `json:"cell_type"`
	Content  string   `json:"content"`
}

// Note represents a board's notes-face buffer.
type Note struct {
	BoardID   string `json:"board_id"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updated_at"`
}

// Peer represents a direct-message participant.
type Peer struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Online      bool   `json:"online"`
	Unread      int    `json:"unread"`
	LastSeen    int64  `json:"last_seen"`
}

// DMDirection represents which way a message travelled.
type DMDirection string

const (
	DMIn  DMDirection = "in"
	DMOut DMDirection = "out"
)

// DMMessage represents one direct message.
type DMMessage struct {
	ID        string      `json:"id"`
	PeerID    string      `json:"peer_id"`
	Direction DMDirection `json:"direction"`
	Body      string      `json:"body"`
	CreatedAt int64       `json:"created_at"`
	Read      bool        `json:"read"`
}

// Status represents live node counters.
type Status struct {
	NodeID  string `json:"node_id"`
	Ready   bool   `json:"ready"`
	Objects int    `json:"objects"`
	Peers   int    `json:"peers"`
}

// BoardRow is a raw database row representation of a board.
type BoardRow struct {
	ID          string
	WorkspaceID string
	Name        string
	Face        string
	CreatedAt   int64
	UpdatedAt   int64
	OwnerNodeID string
}

// OptionalString represents a nullable string update.
type OptionalString struct {
	Set   bool
	Value *string
}
