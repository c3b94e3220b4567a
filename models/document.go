package models

// Document is a single schemaless record of the remote document store,
// addressed by collection and ID. Data never contains store metadata.
type Document struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Fields is a set of flat document fields sent to the document store.
type Fields map[string]any

// Flat field names shared by the profile and journal collections.
const (
	FieldUserID               = "userId"
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldBio                  = "bio"
	FieldDateOfBirth          = "dateOfBirth"
	FieldProfilePicture       = "profilePicture"
	FieldProfilePictureFileID = "profilePictureFileId"
	FieldTheme                = "theme"
	FieldNotifications        = "notifications"
	FieldPrivacy              = "privacy"
	FieldCreatedAt            = "createdAt"
	FieldUpdatedAt            = "updatedAt"

	FieldTitle     = "title"
	FieldContent   = "content"
	FieldMood      = "mood"
	FieldTags      = "tags"
	FieldIsPrivate = "isPrivate"
)

// String returns the string stored under key, or "" when it is absent or
// holds another type.
func (d Document) String(key string) string {
	s, _ := d.Data[key].(string)
	return s
}

// Bool returns the bool stored under key and whether it was present.
func (d Document) Bool(key string) (bool, bool) {
	b, ok := d.Data[key].(bool)
	return b, ok
}

// Strings returns the string slice stored under key. Both []string and
// []any holding strings are accepted, since decoders differ on which they
// produce.
func (d Document) Strings(key string) []string {
	switch v := d.Data[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
