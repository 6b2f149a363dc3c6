package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jomei/notionapi"
)

// notionTextLimit is the longest content Notion accepts in one text object.
const notionTextLimit = 2000

type notionClient struct {
	client *notionapi.Client
}

// NewNotionClient returns a NotionAPI backed by the Notion REST API, or nil
// when token is empty. A rate-limited response fails the call; it is never
// replayed.
func NewNotionClient(token string, opts ...notionapi.ClientOption) NotionAPI {
	if token == "" {
		return nil
	}
	opts = append(opts, notionapi.WithRetry(1))
	return &notionClient{client: notionapi.NewClient(notionapi.Token(token), opts...)}
}

func (c *notionClient) CreatePage(ctx context.Context, databaseID string, doc Document) (string, error) {
	properties, err := notionProperties(doc)
	if err != nil {
		return "", err
	}

	page, err := c.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: properties,
	})
	if err != nil {
		return "", err
	}
	return page.ID.String(), nil
}

func (c *notionClient) DatabaseTitle(ctx context.Context, databaseID string) (string, error) {
	db, err := c.client.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return "", err
	}
	if len(db.Title) == 0 {
		return "", nil
	}
	return db.Title[0].PlainText, nil
}

func notionProperties(doc Document) (notionapi.Properties, error) {
	properties := make(notionapi.Properties, len(doc.Properties))
	for _, p := range doc.Properties {
		switch p.Type {
		case PropertyTitle:
			properties[p.Name] = notionapi.TitleProperty{Title: notionRichText(p.Value)}
		case PropertyRichText:
			properties[p.Name] = notionapi.RichTextProperty{RichText: notionRichText(p.Value)}
		case PropertySelect:
			properties[p.Name] = notionapi.SelectProperty{Select: notionapi.Option{Name: p.Value}}
		case PropertyDate:
			if p.Value != "" {
				if _, err := time.Parse(dateLayout, p.Value); err != nil {
					return nil, fmt.Errorf("property %q: %w", p.Name, err)
				}
			}
			properties[p.Name] = dayProperty{Day: p.Value}
		default:
			return nil, fmt.Errorf("property %q: unsupported type %d", p.Name, p.Type)
		}
	}
	return properties, nil
}

// dayProperty is a date property holding a calendar day. notionapi.Date
// always encodes a full timestamp, which Notion shows in the viewer's zone.
type dayProperty struct {
	Day string
}

func (p dayProperty) GetID() string { return "" }

func (p dayProperty) GetType() notionapi.PropertyType { return notionapi.PropertyTypeDate }

type dayObject struct {
	Start string `json:"start"`
}

func (p dayProperty) MarshalJSON() ([]byte, error) {
	var body struct {
		Date *dayObject `json:"date"`
	}
	if p.Day != "" {
		body.Date = &dayObject{Start: p.Day}
	}
	return json.Marshal(body)
}

// notionRichText splits content into text objects within Notion's length limit.
func notionRichText(content string) []notionapi.RichText {
	chunks := splitRunes(content, notionTextLimit)
	out := make([]notionapi.RichText, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, notionapi.RichText{Text: &notionapi.Text{Content: chunk}})
	}
	return out
}

func splitRunes(s string, size int) []string {
	runes := []rune(s)
	if len(runes) <= size {
		return []string{s}
	}
	var parts []string
	for len(runes) > 0 {
		n := size
		if len(runes) < n {
			n = len(runes)
		}
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}

var _ NotionAPI = (*notionClient)(nil)

