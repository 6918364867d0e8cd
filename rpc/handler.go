package rpc

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"unitconv"
)

// Handler answers request packets with a Converter.
type Handler struct {
	converter *unitconv.Converter
	logger    *zap.Logger
}

func NewHandler(converter *unitconv.Converter, logger *zap.Logger) *Handler {
	if converter == nil {
		converter = unitconv.NewConverter(unitconv.WithLogger(logger))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{converter: converter, logger: logger}
}

// Handle returns the response packet for pkt. It fails only when pkt carries
// no usable id, since a response could not be matched to it.
func (h *Handler) Handle(pkt *Packet) (*Packet, error) {
	id, err := pkt.ID()
	if err != nil {
		return nil, err
	}
	logger := h.logger.With(zap.Stringer("id", id), zap.String("function", pkt.Function()))

	var body any
	switch pkt.Function() {
	case FuncConvert:
		body, err = h.convert(pkt)
	case FuncCategories:
		body, err = h.categories(), nil
	case "":
		err = ErrReqHasNoFunc
	default:
		err = fmt.Errorf("%q: %w", pkt.Function(), ErrNoSuchFunc)
	}

	status := StatusOK
	if err != nil {
		logger.Debug("request failed", zap.Error(err))
		status = StatusError
		body = Response{Code: codeOf(err), Error: err.Error()}
	}

	raw, err := msgpack.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &Packet{
		H: map[string][]byte{
			hdrID:     id[:],
			hdrStatus: []byte(status),
		},
		B: map[string][]byte{bodyResponse: raw},
	}, nil
}

func (h *Handler) convert(pkt *Packet) (Response, error) {
	raw, ok := pkt.B[bodyRequest]
	if !ok {
		return Response{}, ErrReqHasNoBody
	}
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrReqHasNoBody, err)
	}
	if req.Value == nil {
		return Response{}, unitconv.ErrInvalidValue
	}

	value, err := h.converter.Convert(*req.Value, req.From, req.To, unitconv.CategoryKey(req.Category), req.Rates)
	if err != nil {
		return Response{}, err
	}
	return Response{Value: value}, nil
}

func (h *Handler) categories() []CategoryInfo {
	cats := h.converter.Registry().Categories()
	infos := make([]CategoryInfo, 0, len(cats))
	for _, c := range cats {
		infos = append(infos, newCategoryInfo(c))
	}
	return infos
}
