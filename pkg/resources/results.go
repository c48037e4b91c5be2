package resources

import "encoding/json"

type CreateOrUpdateResult struct {
	item Item
}

func NewCreateOrUpdateResult(item Item) *CreateOrUpdateResult {
	return &CreateOrUpdateResult{
		item: item,
	}
}

func (r CreateOrUpdateResult) Item() Item {
	return r.item
}

type UpdateAllResult struct {
	Updated []Item `json:"updated"`
	NotUpdated []struct {
		AttributeName string `json:"attributeName"`
		Reason        string `json:"reason"`
	} `json:"notUpdated"`
}

func (uar *UpdateAllResult) Bytes() []byte {
	b, _ := json.Marshal(uar)
	return b
}

func NewUpdateAllResult(items []Item) *UpdateAllResult {
	return &UpdateAllResult{Updated: items}
}
