package tarkov

import (
	"bytes"
	"context"
	"encoding/json"
)

// Profile is a game profile (PMC or scav) of the account.
type Profile struct {
	ID            string               `json:"_id"`
	AccountID     uint64               `json:"aid"`
	Savage        *string              `json:"savage"`
	Info          ProfileInfo          `json:"Info"`
	Customization ProfileCustomization `json:"Customization"`
	Health        ProfileHealth        `json:"Health"`
	Inventory     ProfileInventory     `json:"Inventory"`
}

// ProfileInfo describes the character.
type ProfileInfo struct {
	Nickname               string              `json:"Nickname"`
	LowerNickname          *string             `json:"LowerNickname"`
	Side                   string              `json:"Side"`
	Voice                  string              `json:"Voice"`
	Level                  uint64              `json:"Level"`
	Experience             uint64              `json:"Experience"`
	RegistrationDate       uint64              `json:"RegistrationDate"`
	GameVersion            string              `json:"GameVersion"`
	AccountType            uint64              `json:"AccountType"`
	LockedMoveCommands     bool                `json:"lockedMoveCommands"`
	SavageLockTime         uint64              `json:"SavageLockTime"`
	LastTimePlayedAsSavage uint64              `json:"LastTimePlayedAsSavage"`
	Settings               ProfileInfoSettings `json:"Settings"`
	NeedWipe               bool                `json:"NeedWipe"`
	GlobalWipe             bool                `json:"GlobalWipe"`
	NicknameChangeDate     uint64              `json:"NicknameChangeDate"`

	// Sent as a string by some calls and as a number by others.
	MemberCategory Unstable `json:"MemberCategory"`
}

// ProfileInfoSettings is set only for bot profiles.
type ProfileInfoSettings struct {
	Role          *string `json:"Role"`
	BotDifficulty *string `json:"BotDifficulty"`
	Experience    *int64  `json:"Experience"`
}

type ProfileCustomization struct {
	Head  string `json:"Head"`
	Body  string `json:"Body"`
	Feet  string `json:"Feet"`
	Hands string `json:"Hands"`
}

type Health struct {
	Current uint64 `json:"Current"`
	Maximum uint64 `json:"Maximum"`
}

type BodyPart struct {
	Health Health `json:"Health"`
}

type BodyParts struct {
	Head     BodyPart `json:"Head"`
	Chest    BodyPart `json:"Chest"`
	Stomach  BodyPart `json:"Stomach"`
	LeftArm  BodyPart `json:"LeftArm"`
	RightArm BodyPart `json:"RightArm"`
	LeftLeg  BodyPart `json:"LeftLeg"`
	RightLeg BodyPart `json:"RightLeg"`
}

type ProfileHealth struct {
	Hydration  Health    `json:"Hydration"`
	Energy     Health    `json:"Energy"`
	BodyParts  BodyParts `json:"BodyParts"`
	UpdateTime uint64    `json:"UpdateTime"`
}

type ProfileInventory struct {
	Items           []Item  `json:"items"`
	Equipment       string  `json:"equipment"`
	Stash           *string `json:"stash"`
	QuestRaidItems  string  `json:"questRaidItems"`
	QuestStashItems string  `json:"questStashItems"`
}

// Item is an item instance, shared by inventories, trader assorts and
// market offers.
type Item struct {
	ID       string  `json:"_id"`
	Template string  `json:"_tpl"`
	ParentID *string `json:"parentId"`
	SlotID   *string `json:"slotId"`
	Upd      *Upd    `json:"upd"`

	// An {x, y, r} grid position in containers, a plain index in magazines.
	Location Unstable `json:"location"`
}

// Upd carries the mutable state of an item.
type Upd struct {
	StackObjectsCount *uint64        `json:"StackObjectsCount"`
	SpawnedInSession  *bool          `json:"SpawnedInSession"`
	MedKit            *UpdMedKit     `json:"MedKit"`
	Repairable        *UpdRepairable `json:"Repairable"`
	Light             *UpdLight      `json:"Light"`
}

type UpdMedKit struct {
	HpResource uint64 `json:"HpResource"`
}

type UpdRepairable struct {
	MaxDurability float64 `json:"MaxDurability"`
	Durability    float64 `json:"Durability"`
}

type UpdLight struct {
	IsActive     bool   `json:"IsActive"`
	SelectedMode uint64 `json:"SelectedMode"`
}

// Location is the grid position of an item in a container.
type Location struct {
	X          int64    `json:"x"`
	Y          int64    `json:"y"`
	R          Unstable `json:"r"`
	IsSearched *bool    `json:"isSearched"`
}

// GridLocation decodes Location when it holds a grid position.
func (i Item) GridLocation() (*Location, bool) {
	if !bytes.HasPrefix(bytes.TrimSpace(i.Location.Raw()), []byte("{")) {
		return nil, false
	}
	var loc Location
	if err := i.Location.Decode(&loc); err != nil {
		return nil, false
	}
	return &loc, true
}

type selectRequest struct {
	UID string `json:"uid"`
}

// Profiles lists the profiles of the account.
func (c *Client) Profiles(ctx context.Context) ([]Profile, error) {
	profiles, err := Do[[]Profile](ctx, c, Request{
		URL: c.config.Endpoints.Prod + "/client/game/profile/list",
	})
	if err != nil {
		return nil, err
	}
	return *profiles, nil
}

// SelectProfile selects the profile the session acts as. New sessions must
// select one before most other calls succeed; until then they fail with
// ErrNotAuthorized.
func (c *Client) SelectProfile(ctx context.Context, userID string) error {
	_, err := Do[json.RawMessage](ctx, c, Request{
		URL:        c.config.Endpoints.Prod + "/client/game/profile/select",
		Body:       &selectRequest{UID: userID},
		PayloadKey: "status",
		Extra:      []Code{CodeInvalidUserSelection},
		AllowEmpty: true,
	})
	return err
}
