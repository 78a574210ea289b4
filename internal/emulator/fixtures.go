package emulator

import "encoding/json"

// Fixture ids
const (
	PMCProfileID  = "5c71b934354682353958e983"
	ScavProfileID = "5c71b934354682353958e984"
	PraporID      = "54cb50c76803fa8b248b4571"
	TherapistID   = "54cb57776803fa99248b456e"
	SaltTemplate  = "59e358a886f7741776641ac3"
)

// The PMC profile reports MemberCategory as a number while the scav sends
// a string, and item locations mix objects and plain indexes.
var profilesJSON = json.RawMessage(`[
  {
    "_id": "5c71b934354682353958e983",
    "aid": 1234567,
    "savage": "5c71b934354682353958e984",
    "Info": {
      "Nickname": "Streamer",
      "LowerNickname": "streamer",
      "Side": "Bear",
      "Voice": "Bear_1",
      "Level": 42,
      "Experience": 3141592,
      "RegistrationDate": 1551000000,
      "GameVersion": "edge_of_darkness",
      "AccountType": 0,
      "MemberCategory": 2,
      "lockedMoveCommands": false,
      "SavageLockTime": 0,
      "LastTimePlayedAsSavage": 1581000000,
      "Settings": {},
      "NeedWipe": false,
      "GlobalWipe": false,
      "NicknameChangeDate": 0,
      "Bans": []
    },
    "Customization": {"Head": "h1", "Body": "b1", "Feet": "f1", "Hands": "g1"},
    "Health": {
      "Hydration": {"Current": 90, "Maximum": 100},
      "Energy": {"Current": 80, "Maximum": 100},
      "BodyParts": {
        "Head": {"Health": {"Current": 35, "Maximum": 35}},
        "Chest": {"Health": {"Current": 85, "Maximum": 85}},
        "Stomach": {"Health": {"Current": 70, "Maximum": 70}},
        "LeftArm": {"Health": {"Current": 60, "Maximum": 60}},
        "RightArm": {"Health": {"Current": 60, "Maximum": 60}},
        "LeftLeg": {"Health": {"Current": 65, "Maximum": 65}},
        "RightLeg": {"Health": {"Current": 65, "Maximum": 65}}
      },
      "UpdateTime": 1581000100
    },
    "Inventory": {
      "items": [
        {"_id": "stash1", "_tpl": "566abbc34bdc2d92178b4576"},
        {"_id": "salt1", "_tpl": "59e358a886f7741776641ac3", "parentId": "stash1", "slotId": "hideout",
         "location": {"x": 3, "y": 1, "r": "Horizontal", "isSearched": true},
         "upd": {"StackObjectsCount": 1, "SpawnedInSession": false}},
        {"_id": "round1", "_tpl": "5656d7c34bdc2d9d198b4587", "parentId": "mag1", "slotId": "cartridges",
         "location": 0, "upd": {"StackObjectsCount": 30}}
      ],
      "equipment": "equip1",
      "stash": "stash1",
      "questRaidItems": "qr1",
      "questStashItems": "qs1",
      "fastPanel": {}
    }
  },
  {
    "_id": "5c71b934354682353958e984",
    "aid": 1234567,
    "savage": null,
    "Info": {
      "Nickname": "Scav",
      "Side": "Savage",
      "Voice": "Scav_1",
      "Level": 1,
      "Experience": 0,
      "RegistrationDate": 1551000000,
      "GameVersion": "edge_of_darkness",
      "AccountType": 0,
      "MemberCategory": "Default",
      "lockedMoveCommands": false,
      "SavageLockTime": 0,
      "LastTimePlayedAsSavage": 0,
      "Settings": {"Role": "assault", "BotDifficulty": "normal", "Experience": -1},
      "NeedWipe": false,
      "GlobalWipe": false,
      "NicknameChangeDate": 0
    },
    "Customization": {"Head": "h2", "Body": "b2", "Feet": "f2", "Hands": "g2"},
    "Health": {
      "Hydration": {"Current": 100, "Maximum": 100},
      "Energy": {"Current": 100, "Maximum": 100},
      "BodyParts": {
        "Head": {"Health": {"Current": 35, "Maximum": 35}},
        "Chest": {"Health": {"Current": 85, "Maximum": 85}},
        "Stomach": {"Health": {"Current": 70, "Maximum": 70}},
        "LeftArm": {"Health": {"Current": 60, "Maximum": 60}},
        "RightArm": {"Health": {"Current": 60, "Maximum": 60}},
        "LeftLeg": {"Health": {"Current": 65, "Maximum": 65}},
        "RightLeg": {"Health": {"Current": 65, "Maximum": 65}}
      },
      "UpdateTime": 1581000100
    },
    "Inventory": {
      "items": [],
      "equipment": "equip2",
      "stash": null,
      "questRaidItems": "qr2",
      "questStashItems": "qs2"
    }
  }
]`)

var friendsJSON = json.RawMessage(`{
  "Friends": [
    {"_id": "5c71b934354682353958f001", "Info": {"Nickname": "Buddy", "Side": "Usec", "Level": 30, "MemberCategory": 0}},
    {"_id": "5c71b934354682353958f002", "Info": {"Nickname": "Pal", "Side": "Bear", "Level": 12, "MemberCategory": "Default"}}
  ],
  "Ignore": [],
  "InIgnoreList": ["5c71b934354682353958f003"]
}`)

var tradersJSON = json.RawMessage(`[
  {
    "_id": "54cb50c76803fa8b248b4571",
    "working": true,
    "customization_seller": false,
    "name": "Pavel Yegorovich",
    "surname": "Romanenko",
    "nickname": "Prapor",
    "location": "Here is the location",
    "avatar": "/files/trader/avatar/prapor.jpg",
    "balance_rub": 1000000,
    "balance_dol": 0,
    "balance_eur": 0,
    "display": true,
    "discount": 0,
    "discount_end": 0,
    "buyer_up": false,
    "currency": "RUB",
    "supply_next_time": 1581003600,
    "repair": {"availability": true, "quality": "2", "currency": "5449016a4bdc2d6f028b456f", "currency_coefficient": 1, "excluded_id_list": []},
    "insurance": {"availability": true, "min_payment": 0, "min_return_hour": 24, "max_return_hour": 36, "max_storage_time": 96, "excluded_category": []},
    "loyalty": [
      {"minLevel": 1, "minSalesSum": 0, "minStanding": 0, "buy_price_coef": 50, "repair_price_coef": 50, "insurance_price_coef": 20}
    ],
    "gridHeight": 150,
    "sell_category": ["5b47574386f77428ca22b33e"]
  },
  {
    "_id": "54cb57776803fa99248b456e",
    "working": true,
    "customization_seller": false,
    "name": "Elvira",
    "surname": "Khabibullina",
    "nickname": "Therapist",
    "location": "Here is the location",
    "avatar": "/files/trader/avatar/therapist.jpg",
    "balance_rub": 1000000,
    "balance_dol": 0,
    "balance_eur": 0,
    "display": true,
    "discount": 0,
    "discount_end": 0,
    "buyer_up": false,
    "currency": "RUB",
    "supply_next_time": 1581003600,
    "repair": {"availability": false, "quality": "0", "currency": "5449016a4bdc2d6f028b456f", "currency_coefficient": 1, "excluded_id_list": []},
    "insurance": {"availability": false, "min_payment": 0, "min_return_hour": 0, "max_return_hour": 0, "max_storage_time": 0, "excluded_category": []},
    "loyalty": [],
    "gridHeight": 100,
    "sell_category": []
  }
]`)

var assortJSON = json.RawMessage(`{
  "items": [
    {"_id": "offer1", "_tpl": "5448be9a4bdc2dfd2f8b456a", "parentId": "hideout", "slotId": "hideout",
     "upd": {"StackObjectsCount": 20}}
  ],
  "barter_scheme": {
    "offer1": [[{"_tpl": "5449016a4bdc2d6f028b456f", "count": 16319.5}]]
  },
  "loyal_level_items": {"offer1": 1}
}`)

var marketJSON = json.RawMessage(`{
  "categories": {"59e358a886f7741776641ac3": 2},
  "offers": [
    {
      "_id": "5e4b1cb4f3a12f09a8f1c2b1",
      "intId": 1001,
      "user": {"id": "5c71b934354682353958f001", "memberType": 0, "nickname": "Buddy", "rating": 512.75, "isRatingGrowing": true, "avatar": null},
      "root": "salt2",
      "items": [{"_id": "salt2", "_tpl": "59e358a886f7741776641ac3", "upd": {"StackObjectsCount": 1}}],
      "itemsCost": 27000,
      "requirements": [{"_tpl": "5449016a4bdc2d6f028b456f", "count": 31500}],
      "requirementsCost": 31500,
      "summaryCost": 31500,
      "sellInOnePiece": false,
      "startTime": 1581000000,
      "endTime": 1581043200,
      "loyaltyLevel": 1
    },
    {
      "_id": "5e4b1cb4f3a12f09a8f1c2b2",
      "intId": 1002,
      "user": {"id": "54cb50c76803fa8b248b4571", "memberType": 4},
      "root": "salt3",
      "items": [{"_id": "salt3", "_tpl": "59e358a886f7741776641ac3"}],
      "itemsCost": 30000,
      "requirements": [{"_tpl": "5449016a4bdc2d6f028b456f", "count": 33000}],
      "requirementsCost": 33000,
      "summaryCost": 33000,
      "sellInOnePiece": false,
      "startTime": 1581000000,
      "endTime": 1581086400,
      "loyaltyLevel": 2
    }
  ],
  "offersCount": 2,
  "selectedCategory": "59e358a886f7741776641ac3"
}`)

var itemPricesJSON = map[string]json.RawMessage{
	SaltTemplate: json.RawMessage(`{"templateId": "59e358a886f7741776641ac3", "min": 27500.5, "max": 41000, "avg": 33780.25}`),
}
