package selection

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// versionNamespace scopes document version hashes.
var versionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resume-fit/document-version"))

// DocumentVersion derives the document version from the posting identity and
// the generation date: YYYYMMDD, a dash and eight hex characters of a
// name-based UUID over title, company and date. Equal inputs give equal
// versions.
func DocumentVersion(title, company string, date time.Time) string {
	day := date.Format("20060102")
	name := strings.Join([]string{title, company, day}, "|")
	id := uuid.NewSHA1(versionNamespace, []byte(name))
	return day + "-" + strings.ReplaceAll(id.String(), "-", "")[:8]
}
