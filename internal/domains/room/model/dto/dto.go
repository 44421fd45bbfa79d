package dto

import (
	"majlis/internal/domains/room/model"
)

type RoomResponse struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.Name = room.Name
	r.Location = room.Location
	r.Capacity = room.Capacity
	r.Available = room.Available
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room) {
	r.Total = len(rooms)
	r.Rooms = make([]RoomResponse, len(rooms))

	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}
